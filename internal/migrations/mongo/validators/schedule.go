package validators

import "go.mongodb.org/mongo-driver/bson"

var WeekdayScheduleValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"day_of_week", "is_enabled", "time_ranges"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id": bson.M{"bsonType": "objectId"},
			"day_of_week": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  6,
			},
			"is_enabled":  bson.M{"bsonType": "bool"},
			"time_ranges": timeRangesSchema,
			"updated_at":  bson.M{"bsonType": "date"},
		},
	},
}

var DateExceptionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"date", "type", "is_enabled", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "objectId"},
			"date":       bson.M{"bsonType": "string", "pattern": datePattern},
			"is_enabled": bson.M{"bsonType": "bool"},
			"type": bson.M{
				"bsonType": "string",
				"enum":     []string{"closed", "custom-hours", "blocked-hours"},
			},
			"time_ranges": timeRangesSchema,
			"reason":      bson.M{"bsonType": "string", "maxLength": 200},
			"created_at":  bson.M{"bsonType": "date"},
			"updated_at":  bson.M{"bsonType": "date"},
		},
	},
}
