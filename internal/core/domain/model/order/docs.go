// Package order implements the order aggregate for the online ordering system.
// An Order owns its line items, carries a snapshot of prices and contact
// details taken at checkout, and moves through a fixed lifecycle from pending
// to delivered. All construction goes through validated factory methods so an
// order can never exist in an invalid state.
package order
