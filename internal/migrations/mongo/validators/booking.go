package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"date",
			"pickup_time",
			"status",
			"service_type",
			"customer_name",
			"customer_email",
			"pickup_location",
			"passengers",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  datePattern,
			},

			"pickup_time": bson.M{
				"bsonType": "string",
				"pattern":  timeOfDayPattern,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum":     []string{"pending", "confirmed", "cancelled", "completed"},
			},

			"service_type": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 50,
			},

			"customer_name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"customer_email": bson.M{
				"bsonType": "string",
			},

			"customer_phone": bson.M{
				"bsonType": "string",
			},

			"pickup_location": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 300,
			},

			"passengers": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  60,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var ManualBookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"date", "start_time", "end_time", "is_active"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "objectId"},
			"date":       bson.M{"bsonType": "string", "pattern": datePattern},
			"start_time": bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"end_time":   bson.M{"bsonType": "string", "pattern": timeOfDayPattern},
			"is_active":  bson.M{"bsonType": "bool"},
			"reason":     bson.M{"bsonType": "string", "maxLength": 200},
		},
	},
}
