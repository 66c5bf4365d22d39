// Package ragbuild builds a vector-searchable database of Fedora
// documentation. It discovers the fleet of documentation source
// repositories from the upstream site configuration, resolves Antora
// component collisions to a single canonical source per component,
// clones the winners, renders them with Antora in a container, and
// hands the rendered pages to the docs2db ingestion pipeline which
// produces the final database dump.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or external
// collaborator (e.g., http/, git/, antora/, docs2db/).
package ragbuild
