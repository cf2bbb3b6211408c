// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/confscout/scout/ent/calendarevent"
	"github.com/confscout/scout/ent/feedbacksession"
	"github.com/confscout/scout/ent/idea"
	"github.com/confscout/scout/ent/insight"
	"github.com/confscout/scout/ent/rating"
	"github.com/confscout/scout/ent/schema"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/ent/vote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	calendareventFields := schema.CalendarEvent{}.Fields()
	_ = calendareventFields
	// calendareventDescEventType is the schema descriptor for event_type field.
	calendareventDescEventType := calendareventFields[5].Descriptor()
	// calendarevent.DefaultEventType holds the default value on creation for the event_type field.
	calendarevent.DefaultEventType = calendareventDescEventType.Default.(string)
	// calendareventDescCreatedAt is the schema descriptor for created_at field.
	calendareventDescCreatedAt := calendareventFields[8].Descriptor()
	// calendarevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarevent.DefaultCreatedAt = calendareventDescCreatedAt.Default.(func() time.Time)
	feedbacksessionFields := schema.FeedbackSession{}.Fields()
	_ = feedbacksessionFields
	// feedbacksessionDescCurrentIndex is the schema descriptor for current_index field.
	feedbacksessionDescCurrentIndex := feedbacksessionFields[8].Descriptor()
	// feedbacksession.DefaultCurrentIndex holds the default value on creation for the current_index field.
	feedbacksession.DefaultCurrentIndex = feedbacksessionDescCurrentIndex.Default.(int)
	// feedbacksession.CurrentIndexValidator is a validator for the "current_index" field. It is called by the builders before save.
	feedbacksession.CurrentIndexValidator = func() func(int) error {
		validators := feedbacksessionDescCurrentIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(current_index int) error {
			for _, fn := range fns {
				if err := fn(current_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// feedbacksessionDescCreatedAt is the schema descriptor for created_at field.
	feedbacksessionDescCreatedAt := feedbacksessionFields[11].Descriptor()
	// feedbacksession.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbacksession.DefaultCreatedAt = feedbacksessionDescCreatedAt.Default.(func() time.Time)
	// feedbacksessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	feedbacksessionDescLastActivityAt := feedbacksessionFields[12].Descriptor()
	// feedbacksession.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	feedbacksession.DefaultLastActivityAt = feedbacksessionDescLastActivityAt.Default.(func() time.Time)
	ideaFields := schema.Idea{}.Fields()
	_ = ideaFields
	// ideaDescCreatedAt is the schema descriptor for created_at field.
	ideaDescCreatedAt := ideaFields[4].Descriptor()
	// idea.DefaultCreatedAt holds the default value on creation for the created_at field.
	idea.DefaultCreatedAt = ideaDescCreatedAt.Default.(func() time.Time)
	// ideaDescUpdatedAt is the schema descriptor for updated_at field.
	ideaDescUpdatedAt := ideaFields[5].Descriptor()
	// idea.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	idea.DefaultUpdatedAt = ideaDescUpdatedAt.Default.(func() time.Time)
	// idea.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	idea.UpdateDefaultUpdatedAt = ideaDescUpdatedAt.UpdateDefault.(func() time.Time)
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[6].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	// insightDescUpdatedAt is the schema descriptor for updated_at field.
	insightDescUpdatedAt := insightFields[7].Descriptor()
	// insight.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	insight.DefaultUpdatedAt = insightDescUpdatedAt.Default.(func() time.Time)
	// insight.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	insight.UpdateDefaultUpdatedAt = insightDescUpdatedAt.UpdateDefault.(func() time.Time)
	ratingFields := schema.Rating{}.Fields()
	_ = ratingFields
	// ratingDescScore is the schema descriptor for score field.
	ratingDescScore := ratingFields[3].Descriptor()
	// rating.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	rating.ScoreValidator = func() func(int) error {
		validators := ratingDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ratingDescUpdatedAt is the schema descriptor for updated_at field.
	ratingDescUpdatedAt := ratingFields[4].Descriptor()
	// rating.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rating.DefaultUpdatedAt = ratingDescUpdatedAt.Default.(func() time.Time)
	// rating.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rating.UpdateDefaultUpdatedAt = ratingDescUpdatedAt.UpdateDefault.(func() time.Time)
	startupFields := schema.Startup{}.Fields()
	_ = startupFields
	// startupDescCreatedAt is the schema descriptor for created_at field.
	startupDescCreatedAt := startupFields[19].Descriptor()
	// startup.DefaultCreatedAt holds the default value on creation for the created_at field.
	startup.DefaultCreatedAt = startupDescCreatedAt.Default.(func() time.Time)
	voteFields := schema.Vote{}.Fields()
	_ = voteFields
	// voteDescCreatedAt is the schema descriptor for created_at field.
	voteDescCreatedAt := voteFields[4].Descriptor()
	// vote.DefaultCreatedAt holds the default value on creation for the created_at field.
	vote.DefaultCreatedAt = voteDescCreatedAt.Default.(func() time.Time)
}
