// Package association provides AssociationResolver and RecordSource
// implementations for hosts without an ORM: Static keeps declarations and
// records in memory, and the openapi subpackage reads relationship metadata
// from an OpenAPI document.
package association
