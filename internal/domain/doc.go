// Package domain defines the core business entities for veterinary
// consultations and the mapping from raw consultation documents into
// those entities. The types here are plain value records: they are
// built once per generation request and carry no behavior beyond
// projection into a template context.
package domain
