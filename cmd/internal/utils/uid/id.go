package uid

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

// DefaultMachineID is used when Generate is called before Init (tests, tools).
const DefaultMachineID = 1

var (
	node *snowflake.Node
	once sync.Once
)

func Init(machineID int64) {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
	})
}

// Generate returns a new positive id. Ids are time ordered and never handed out twice
// by the same node, so deleted rows never get their id back.
func Generate() int64 {
	// No-op once Init already ran
	Init(DefaultMachineID)
	return node.Generate().Int64()
}
