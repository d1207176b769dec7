package routes

import "github.com/JaimeStill/page-router/pkg/openapi"

// Spec generates an OpenAPI document for every documented route in sys.
// Operations without tags inherit the tags of their group.
func Spec(sys System, info *openapi.Info, servers []*openapi.Server, components *openapi.Components) *openapi.Spec {
	spec := &openapi.Spec{
		OpenAPI:    openapi.Version,
		Info:       info,
		Servers:    servers,
		Paths:      make(map[string]*openapi.PathItem),
		Components: components,
	}

	for _, group := range sys.Groups() {
		addGroup(spec, "", group)
	}
	for _, route := range sys.Routes() {
		if route.OpenAPI != nil {
			spec.AddOperation(route.Pattern, route.Method, route.OpenAPI)
		}
	}

	return spec
}

func addGroup(spec *openapi.Spec, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, &op)
	}

	for _, child := range group.Children {
		addGroup(spec, prefix, child)
	}
}
