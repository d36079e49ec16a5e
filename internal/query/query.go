// Package query composes record predicates for listing operations.
package query

import "github.com/dtroode/playground-api/internal/model"

// Predicate reports whether a record matches a condition.
type Predicate[T any] func(T) bool

// Apply returns the items matching every predicate, in source order.
// The result is always a fresh slice; items is never modified.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

// UserByID matches the user with the given identifier.
func UserByID(id int) Predicate[model.User] {
	return func(u model.User) bool { return u.ID == id }
}

// UserByRole matches users holding role.
func UserByRole(role model.Role) Predicate[model.User] {
	return func(u model.User) bool { return u.Role == role }
}

// PostByID matches the post with the given identifier.
func PostByID(id int) Predicate[model.Post] {
	return func(p model.Post) bool { return p.ID == id }
}

// PostByAuthor matches posts written by authorID.
func PostByAuthor(authorID int) Predicate[model.Post] {
	return func(p model.Post) bool { return p.AuthorID == authorID }
}

// PostHasTag matches posts labelled with tag.
func PostHasTag(tag string) Predicate[model.Post] {
	return func(p model.Post) bool { return p.HasTag(tag) }
}

// UserPredicates translates f into predicates. An ID filter is exclusive.
func UserPredicates(f model.UserFilter) []Predicate[model.User] {
	if f.ID != nil {
		return []Predicate[model.User]{UserByID(*f.ID)}
	}

	var preds []Predicate[model.User]
	if f.Role != nil {
		preds = append(preds, UserByRole(*f.Role))
	}
	return preds
}

// PostPredicates translates f into predicates. An ID filter is exclusive.
func PostPredicates(f model.PostFilter) []Predicate[model.Post] {
	if f.ID != nil {
		return []Predicate[model.Post]{PostByID(*f.ID)}
	}

	var preds []Predicate[model.Post]
	if f.AuthorID != nil {
		preds = append(preds, PostByAuthor(*f.AuthorID))
	}
	if f.Tag != nil {
		preds = append(preds, PostHasTag(*f.Tag))
	}
	return preds
}
