// Package idgen identificadores ordenados en el tiempo para el kardex.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generador de IDs snowflake para un nodo.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake crea el generador; nodeID debe estar entre 0 y 1023.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("idgen: nodo %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// Next devuelve el siguiente ID; su firma encaja con inventory.NewLedger.
func (s *Snowflake) Next() int64 {
	return s.node.Generate().Int64()
}
