package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/nestworth/nestworth-backend/docs"
)

var openAPIServers = []map[string]string{
	{"url": "http://localhost:8080/api/v1", "description": "Local development"},
	{"url": "https://api.nestworth.app/api/v1", "description": "Production"},
}

// ServeOpenAPISpec serves the generated API documentation upgraded to
// OpenAPI 3.0. swag still emits Swagger 2.0; most client tooling wants 3.x,
// so the document is converted on the fly.
func ServeOpenAPISpec(c echo.Context) error {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "API documentation is unavailable")
	}

	var v2 map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &v2); err != nil {
		return NewInternalError(c, "API documentation is malformed")
	}

	v3 := map[string]interface{}{
		"openapi": "3.0.3",
		"info":    v2["info"],
		"servers": openAPIServers,
	}
	if paths, ok := v2["paths"].(map[string]interface{}); ok {
		v3["paths"] = upgradePaths(paths)
	}

	components := map[string]interface{}{}
	if defs, ok := v2["definitions"].(map[string]interface{}); ok {
		components["schemas"] = rewriteRefs(defs)
	}
	if secDefs, ok := v2["securityDefinitions"].(map[string]interface{}); ok {
		components["securitySchemes"] = upgradeSecuritySchemes(secDefs)
	}
	if len(components) > 0 {
		v3["components"] = components
	}

	return c.JSON(http.StatusOK, v3)
}

func upgradePaths(paths map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(paths))
	for route, item := range paths {
		ops, ok := item.(map[string]interface{})
		if !ok {
			out[route] = item
			continue
		}
		upgraded := make(map[string]interface{}, len(ops))
		for method, op := range ops {
			if opMap, ok := op.(map[string]interface{}); ok {
				upgraded[method] = upgradeOperation(opMap)
			} else {
				upgraded[method] = op
			}
		}
		out[route] = upgraded
	}
	return out
}

// upgradeOperation rewrites a single Swagger 2.0 operation: $refs move to
// #/components/schemas/, the body parameter becomes a requestBody, remaining
// parameters get their type fields hoisted under "schema", and response
// schemas move under per-media-type content objects.
func upgradeOperation(op map[string]interface{}) map[string]interface{} {
	out := rewriteRefs(op).(map[string]interface{})

	if params, ok := out["parameters"].([]interface{}); ok {
		kept := make([]interface{}, 0, len(params))
		for _, p := range params {
			param, ok := p.(map[string]interface{})
			if !ok {
				kept = append(kept, p)
				continue
			}
			if param["in"] == "body" {
				out["requestBody"] = upgradeBodyParam(param)
				continue
			}
			kept = append(kept, hoistParamSchema(param))
		}
		if len(kept) > 0 {
			out["parameters"] = kept
		} else {
			delete(out, "parameters")
		}
	}

	contentType := "application/json"
	if produces, ok := out["produces"].([]interface{}); ok && len(produces) > 0 {
		if mt, ok := produces[0].(string); ok {
			contentType = mt
		}
	}
	if responses, ok := out["responses"].(map[string]interface{}); ok {
		for _, r := range responses {
			resp, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			schema, ok := resp["schema"]
			if !ok {
				continue
			}
			if s, ok := schema.(map[string]interface{}); ok && s["type"] == "file" {
				schema = map[string]interface{}{"type": "string", "format": "binary"}
			}
			resp["content"] = map[string]interface{}{
				contentType: map[string]interface{}{"schema": schema},
			}
			delete(resp, "schema")
		}
	}
	delete(out, "produces")
	delete(out, "consumes")

	return out
}

func upgradeBodyParam(param map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{"schema": param["schema"]},
		},
	}
	if desc, ok := param["description"]; ok {
		body["description"] = desc
	}
	if required, ok := param["required"]; ok {
		body["required"] = required
	}
	return body
}

func hoistParamSchema(param map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(param))
	schema := map[string]interface{}{}
	for key, value := range param {
		switch key {
		case "type", "format", "enum", "default", "minimum", "maximum", "items":
			schema[key] = value
		default:
			out[key] = value
		}
	}
	if len(schema) > 0 {
		out["schema"] = schema
	}
	return out
}

// rewriteRefs returns a deep copy of node with every $ref retargeted from
// #/definitions/ to #/components/schemas/.
func rewriteRefs(node interface{}) interface{} {
	switch v := node.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			if key == "$ref" {
				if ref, ok := value.(string); ok {
					out[key] = strings.Replace(ref, "#/definitions/", "#/components/schemas/", 1)
					continue
				}
			}
			out[key] = rewriteRefs(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = rewriteRefs(item)
		}
		return out
	default:
		return node
	}
}

// upgradeSecuritySchemes maps the 2.0 apiKey-in-Authorization-header
// convention onto the 3.0 http bearer scheme.
func upgradeSecuritySchemes(defs map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(defs))
	for name, d := range defs {
		def, ok := d.(map[string]interface{})
		if !ok || def["type"] != "apiKey" || def["in"] != "header" || def["name"] != "Authorization" {
			out[name] = d
			continue
		}
		scheme := map[string]interface{}{"type": "http", "scheme": "bearer"}
		if desc, ok := def["description"]; ok {
			scheme["description"] = desc
		}
		out[name] = scheme
	}
	return out
}
