// Package routine defines training routines and their exercises.
package routine

// Exercise is a single movement inside a routine, keyed by name.
type Exercise struct {
	Name        string `json:"name"`
	Repetitions int    `json:"repetitions"`
	Sets        int    `json:"sets"`
}

// Routine is an ordered exercise program with a stated objective. The
// routine owns its exercise list; exercises carry no back-references.
type Routine struct {
	ID        string     `json:"id"`
	Objective string     `json:"objective"`
	Exercises []Exercise `json:"exercises"`
}
