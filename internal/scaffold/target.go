package scaffold

import "strings"

// ParseTarget resolves a model name argument into a Target.
//
// The name may select a bundle with "bundle::name" and nest the class in
// sub-directories with dots: "shop::admin.product" is class Admin_Product in
// bundles/shop/models/admin/product.php.
func ParseTarget(name string, paths Paths, inf *Inflector) (*Target, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return nil, ErrMissingModelName
	}

	defaultBundle := paths.DefaultBundle
	if defaultBundle == "" {
		defaultBundle = DefaultBundle
	}

	bundle := defaultBundle
	if b, rest, ok := strings.Cut(name, "::"); ok {
		if b != "" {
			bundle = b
		}
		name = rest
	}

	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '.' || r == '/' })
	if len(segments) == 0 {
		return nil, ErrMissingModelName
	}

	class := segments[len(segments)-1]
	dirs := segments[:len(segments)-1]

	t := &Target{
		Bundle:        bundle,
		DefaultBundle: bundle == defaultBundle,
		BundlePath:    bundlePath(bundle, defaultBundle, paths),
		Class:         inf.Classify(class),
		Lower:         class,
	}
	if len(dirs) > 0 {
		t.ClassPath = strings.Join(dirs, "/") + "/"
		t.ClassPrefix = inf.Classify(strings.Join(dirs, "_")) + "_"
	}
	return t, nil
}

func bundlePath(bundle, defaultBundle string, paths Paths) string {
	if bundle == defaultBundle {
		return withSlash(paths.Application)
	}
	return withSlash(paths.Bundles) + bundle + "/"
}

func withSlash(p string) string {
	if p == "" || strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}
