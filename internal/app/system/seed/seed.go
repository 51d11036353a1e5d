// Package seed loads the starter reference content into an empty
// database.
package seed

import (
	"context"
	"fmt"

	communitystore "github.com/dalemusser/ukrconnect/internal/app/store/community"
	eventstore "github.com/dalemusser/ukrconnect/internal/app/store/events"
	heritagestore "github.com/dalemusser/ukrconnect/internal/app/store/heritage"
	lessonstore "github.com/dalemusser/ukrconnect/internal/app/store/lessons"
	resourcestore "github.com/dalemusser/ukrconnect/internal/app/store/resources"
	translationstore "github.com/dalemusser/ukrconnect/internal/app/store/translations"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Report says what Run did.
type Report struct {
	Skipped      bool
	Translations int
	Lessons      int
	Community    int
	Heritage     int
	Events       int
	Resources    int
}

// Total is the number of records inserted.
func (r Report) Total() int {
	return r.Translations + r.Lessons + r.Community + r.Heritage + r.Events + r.Resources
}

// Run loads the starter content when the translations collection is
// empty, and does nothing otherwise. Translations go in last so they only
// appear once the other datasets are in place, and records of those
// datasets already stored (matched by title) are not inserted again. A
// Run that failed before its translations is therefore finished by the
// next Run without duplicates.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger) (Report, error) {
	translations := translationstore.New(db)

	n, err := translations.Count(ctx, bson.M{})
	if err != nil {
		return Report{}, fmt.Errorf("count translations: %w", err)
	}
	if n > 0 {
		logger.Info("seed skipped: translations already present", zap.Int64("translations", n))
		return Report{Skipped: true}, nil
	}

	var rep Report

	if rep.Lessons, err = fill(ctx, lessonstore.Collection, lessonstore.New(db), Lessons(),
		func(l models.Lesson) string { return l.Title }); err != nil {
		return rep, err
	}
	if rep.Community, err = fill(ctx, communitystore.Collection, communitystore.New(db), Community(),
		func(c models.CommunityInfo) string { return c.Title }); err != nil {
		return rep, err
	}
	if rep.Heritage, err = fill(ctx, heritagestore.Collection, heritagestore.New(db), Heritage(),
		func(h models.HeritageInfo) string { return h.Title }); err != nil {
		return rep, err
	}
	if rep.Resources, err = fill(ctx, resourcestore.Collection, resourcestore.New(db), Resources(),
		func(r models.Resource) string { return r.Title }); err != nil {
		return rep, err
	}
	if rep.Events, err = fill(ctx, eventstore.Collection, eventstore.New(db), Events(),
		func(e models.Event) string { return e.Title }); err != nil {
		return rep, err
	}

	for _, t := range Translations() {
		if _, err := translations.Create(ctx, t); err != nil {
			return rep, fmt.Errorf("seed translation %q: %w", t.English, err)
		}
		rep.Translations++
	}

	logger.Info("seed complete",
		zap.Int("translations", rep.Translations),
		zap.Int("lessons", rep.Lessons),
		zap.Int("community", rep.Community),
		zap.Int("heritage", rep.Heritage),
		zap.Int("events", rep.Events),
		zap.Int("resources", rep.Resources))
	return rep, nil
}

type counter interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type creator[T any] interface {
	counter
	Create(ctx context.Context, v T) (T, error)
}

// fill inserts each item whose title is not stored yet and returns how
// many it inserted.
func fill[T any](ctx context.Context, name string, s creator[T], items []T, title func(T) string) (int, error) {
	inserted := 0
	for _, v := range items {
		have, err := s.Count(ctx, bson.M{"title": title(v)})
		if err != nil {
			return inserted, fmt.Errorf("count %s: %w", name, err)
		}
		if have > 0 {
			continue
		}
		if _, err := s.Create(ctx, v); err != nil {
			return inserted, fmt.Errorf("seed %s %q: %w", name, title(v), err)
		}
		inserted++
	}
	return inserted, nil
}

// Counts reports how many records each content collection holds.
func Counts(ctx context.Context, db *mongo.Database) (map[string]int64, error) {
	stores := map[string]counter{
		translationstore.Collection: translationstore.New(db),
		lessonstore.Collection:      lessonstore.New(db),
		communitystore.Collection:   communitystore.New(db),
		heritagestore.Collection:    heritagestore.New(db),
		eventstore.Collection:       eventstore.New(db),
		resourcestore.Collection:    resourcestore.New(db),
	}
	out := make(map[string]int64, len(stores))
	for name, s := range stores {
		n, err := s.Count(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}
