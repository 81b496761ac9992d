package main

import (
	"context"
	"fmt"
	"os"

	"social_workspace/cmd"
)

// @title						social_workspace API
// @version					1.0
// @description				Signup, follow, posts, likes and comments.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	if err := cmd.Root().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
