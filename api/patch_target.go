package api

import (
	"encoding/json"
	"fmt"
)

// Get, Set and Reset make UpdateMovieRequest the editable shape JSON patch
// documents are applied to. Member names are the JSON names.
func (m *UpdateMovieRequest) Get(name string) (any, bool) {
	switch name {
	case "titulo":
		return m.Titulo, true
	case "genero":
		return m.Genero, true
	case "duracao":
		return m.Duracao, true
	default:
		return nil, false
	}
}

func (m *UpdateMovieRequest) Set(name string, value json.RawMessage) error {
	var err error

	switch name {
	case "titulo":
		err = json.Unmarshal(value, &m.Titulo)
	case "genero":
		err = json.Unmarshal(value, &m.Genero)
	case "duracao":
		err = json.Unmarshal(value, &m.Duracao)
	default:
		return fmt.Errorf("unknown field %q", name)
	}

	if err != nil {
		return fmt.Errorf("invalid value for %q", name)
	}

	return nil
}

func (m *UpdateMovieRequest) Reset(name string) error {
	switch name {
	case "titulo":
		m.Titulo = ""
	case "genero":
		m.Genero = ""
	case "duracao":
		m.Duracao = 0
	default:
		return fmt.Errorf("unknown field %q", name)
	}

	return nil
}
