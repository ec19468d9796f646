package validators

import "go.mongodb.org/mongo-driver/bson"

const (
	timeOfDayPattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
	datePattern      = `^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`
)

var timeRangesSchema = bson.M{
	"bsonType": "array",
	"items": bson.M{
		"bsonType": "object",
		"required": []string{"start", "end"},
		"properties": bson.M{
			"start": bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"end":   bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
		},
	},
}
