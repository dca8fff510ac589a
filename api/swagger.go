package api

import (
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// SwaggerHandler serves the OpenAPI document, as JSON when the client asks
// for it and as YAML otherwise.
func SwaggerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := GetSwagger()
		if err != nil {
			http.Error(w, "Failed to load swagger spec", http.StatusInternalServerError)
			return
		}

		jsonSpec, err := doc.MarshalJSON()
		if err != nil {
			http.Error(w, "Failed to encode swagger spec", http.StatusInternalServerError)
			return
		}

		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			w.Header().Set("Content-Type", "application/json")
			w.Write(jsonSpec)
			return
		}

		// YAML is a superset of JSON, so the JSON form decodes directly.
		var spec any
		if err := yaml.Unmarshal(jsonSpec, &spec); err != nil {
			http.Error(w, "Failed to convert swagger spec to YAML", http.StatusInternalServerError)
			return
		}

		yamlSpec, err := yaml.Marshal(spec)
		if err != nil {
			http.Error(w, "Failed to convert swagger spec to YAML", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/yaml")
		w.Write(yamlSpec)
	}
}
