// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup (EnsureSchema hook). Each ensure* function is
idempotent. Errors are aggregated so any problem is visible and startup can
fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureOrganisations(ctx, db); err != nil {
		problems = append(problems, "organisations: "+err.Error())
	}
	if err := ensureCourses(ctx, db); err != nil {
		problems = append(problems, "courses: "+err.Error())
	}
	if err := ensureCourseInstances(ctx, db); err != nil {
		problems = append(problems, "course_instances: "+err.Error())
	}
	if err := ensureDelegates(ctx, db); err != nil {
		problems = append(problems, "delegates: "+err.Error())
	}
	if err := ensureQuotes(ctx, db); err != nil {
		problems = append(problems, "quotes: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func create(ctx context.Context, db *mongo.Database, coll string, idx []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, idx)
	return err
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().SetName("uniq_email_ci").SetUnique(true),
		},
	})
}

func ensureOrganisations(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "organisations", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("uniq_name_ci").SetUnique(true),
		},
	})
}

func ensureCourses(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "courses", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetName("title_ci"),
		},
	})
}

func ensureCourseInstances(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "course_instances", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "course_id", Value: 1}, {Key: "start_date", Value: 1}},
			Options: options.Index().SetName("course_start"),
		},
		{
			Keys:    bson.D{{Key: "bookings.delegate_id", Value: 1}},
			Options: options.Index().SetName("bookings_delegate"),
		},
	})
}

func ensureDelegates(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "delegates", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "organisation_id", Value: 1}},
			Options: options.Index().SetName("organisation"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email"),
		},
	})
}

func ensureQuotes(ctx context.Context, db *mongo.Database) error {
	// Org+instance is the lookup the quotes list and the auto-quote
	// generator both use; reference supports operator search.
	return create(ctx, db, "quotes", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "organisation_id", Value: 1}, {Key: "course_instance_id", Value: 1}},
			Options: options.Index().SetName("org_instance"),
		},
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetName("uniq_reference").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		},
	})
}
