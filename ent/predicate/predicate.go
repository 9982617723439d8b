// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// TransitionEvent is the predicate function for transitionevent builders.
type TransitionEvent func(*sql.Selector)
