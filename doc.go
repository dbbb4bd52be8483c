// Package pyrostock implements the inventory ledger for a fireworks
// retailer: a store of stock-keeping items, the derived valuation
// metrics, and a bounded daily history of the total stock value.
//
// The package is the data layer behind the psk command line tool. All
// durable state lives in two JSONL documents (the item list and the
// valuation history) that are read once at startup and rewritten
// wholesale on every mutation.
package pyrostock
