// Package domain models conference sessions as they are loaded from a dataset:
// the session record, its heterogeneous speaker entries, and the fixed tables
// that map facet keys and level codes onto session attributes.
package domain
