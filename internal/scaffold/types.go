// Package scaffold generates Eloquent model source for bob.
package scaffold

import "errors"

// ErrMissingModelName is returned when no model class name was supplied.
var ErrMissingModelName = errors.New("you must specify a model name")

// DefaultBundle is the bundle name that receives no class prefix.
const DefaultBundle = "application"

// Target identifies the class being generated and where it lives.
type Target struct {
	Bundle        string // "application" or a bundle name: "shop"
	DefaultBundle bool   // true when Bundle is the default bundle
	BundlePath    string // "application/" or "bundles/shop/"
	Class         string // classified name: "User"
	Lower         string // lowercase name: "user"
	ClassPath     string // nested directory: "admin/"
	ClassPrefix   string // nested class prefix: "Admin_"
}

// Paths configures where bundles live on disk.
type Paths struct {
	Application   string // default bundle root, e.g. "application/"
	Bundles       string // bundles root, e.g. "bundles/"
	DefaultBundle string // defaults to DefaultBundle
	Extension     string // source extension, e.g. ".php"
}

// GeneratedFile is a rendered artifact handed to a writer.
type GeneratedFile struct {
	Kind    string // artifact type: "Model"
	Name    string // resolved class name: "Shop_Product"
	Path    string // path relative to the project root
	Content string
}
