// Package tableview provides generic filter, sort and pagination primitives for
// in-memory table views.
//
// Overview
//
// A view is derived from the full item set in three pure steps:
//   - Filter: case-insensitive substring match of a query against the string
//     fields chosen for search.
//   - Sort: stable ordering by one typed field in either direction.
//   - Paginate: the requested page together with page metadata and the page
//     navigation sequence (see PageNumbers).
//
// Key concepts
//   - Field: a typed accessor for one column (StringField, NumberField,
//     TimeField). Fields are collected in a Fields registry and looked up by key.
//   - Table: owns the items and the PageState of one view and recomputes the
//     visible page on demand.
//   - PageState: query, sort and current page; it serializes into an opaque
//     token so a view can be restored later.
//   - Source: supplies the items of a table. SliceSource serves a fixed slice,
//     GORMSource loads a model through GORM.
package tableview
