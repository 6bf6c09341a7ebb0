// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/rjreducation/vsdcentre/internal/web/module"
)

// ComposeInput carries the modules mounted on the root handler.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a root HTTP handler from the configured modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature, mount, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, mount, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, mount module.Mount, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := strings.TrimSpace(mount.Prefix)
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// slashlessPrefixAlias lets clients reach /api/contact without the trailing
// slash that subtree mounting requires.
func slashlessPrefixAlias(prefix string) string {
	alias := strings.TrimSuffix(prefix, "/")
	if alias == "" {
		return ""
	}
	return alias
}
