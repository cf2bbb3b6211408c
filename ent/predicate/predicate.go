// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CalendarEvent is the predicate function for calendarevent builders.
type CalendarEvent func(*sql.Selector)

// FeedbackSession is the predicate function for feedbacksession builders.
type FeedbackSession func(*sql.Selector)

// Idea is the predicate function for idea builders.
type Idea func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// Rating is the predicate function for rating builders.
type Rating func(*sql.Selector)

// Startup is the predicate function for startup builders.
type Startup func(*sql.Selector)

// Vote is the predicate function for vote builders.
type Vote func(*sql.Selector)
