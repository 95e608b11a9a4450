package idgen

import (
	"fmt"

	"fellowship_escrow/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
)

var _ interfaces.IIDGenerator = (*Snowflake)(nil)

// Snowflake issues message ids. Ids from one node are strictly increasing;
// ids across nodes sort by creation millisecond.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

func (s *Snowflake) NextID() string {
	return s.node.Generate().String()
}
