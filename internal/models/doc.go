// Package models defines the core domain records for sbd.
//
// # Records
//
//   - Expense: one spent amount with category, payment, and receipt details
//   - Goal: a measurable target with a progress counter
//   - Restaurant: a place to eat, with nested location and order-timing
//     sub-objects and a set of referenced menu IDs
//
// Records are plain structs; how they are keyed and serialized is the
// storage backend's business. IDs are strings so the SQLite (UUID) and
// Mongo (ObjectID hex) backends can coexist behind the same interfaces.
//
// Restaurant is the only record with an update path. RestaurantUpdate uses
// pointer fields throughout so callers can distinguish "not supplied" from a
// genuine zero value (latitude 0 is a real coordinate).
package models
