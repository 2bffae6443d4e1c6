// Package model defines the database models for Cerberus.
//
// This package contains GORM models that map to the permission graph schema.
//
// # Core Models
//
//   - User: principals, identified by a unique name
//   - Component: coarse namespaces grouping elements
//   - Element: protectable resource instances within a component
//   - Operation: the global action vocabulary (view, edit, delete, manage)
//   - Permission: the grantable (element, operation) unit
//   - UserPermission: an actual grant tying a user to a permission
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - users
//   - components
//   - elements
//   - operations
//   - permissions
//   - user_permissions
package model
