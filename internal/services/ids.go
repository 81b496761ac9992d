package services

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// parseID maps a malformed hex id to notFound: an id that cannot exist
// references nothing.
func parseID(hex string, notFound error) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, notFound
	}
	return oid, nil
}
