package service

import "palmtrack/entities"

// Grouped partitions todos into date buckets relative to "today" at call
// time, comparing date-only values.
type Grouped struct {
	Overdue  []entities.TodoItem `json:"overdue"`
	Today    []entities.TodoItem `json:"today"`
	Tomorrow []entities.TodoItem `json:"tomorrow"`
	ThisWeek []entities.TodoItem `json:"this_week"` // within today+7, excluding today/tomorrow
	Later    []entities.TodoItem `json:"later"`
}

// TodoService builds the cross-garden outstanding-work list from pending
// maintenances and open issues. Results are recomputed fresh on every call;
// the methods never fail — missing or unreadable subsets degrade to empty.
type TodoService interface {
	All() []entities.TodoItem
	Grouped() Grouped
	Count() int
}
