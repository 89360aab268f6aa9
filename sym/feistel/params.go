package feistel

const (
	BlockSize = 16
	FlowCount = 4
	FlowSize  = BlockSize / FlowCount
	Rounds    = 16
	KeySize   = BlockSize
)

// Parameter for the Feistel network
// note: the key size equals the block size, the round key size equals the flow size
type Parameter struct {
	BlockSize int
	FlowCount int
	Rounds    int
}

// DefaultParams is the only geometry the cipher supports
var DefaultParams = Parameter{
	BlockSize: BlockSize,
	FlowCount: FlowCount,
	Rounds:    Rounds,
}

// GetBlockSize returns the block size in bytes
func (params Parameter) GetBlockSize() int {
	return params.BlockSize
}

// GetFlowCount returns the number of flows per block
func (params Parameter) GetFlowCount() int {
	return params.FlowCount
}

// GetFlowSize returns the flow size in bytes
func (params Parameter) GetFlowSize() int {
	return params.BlockSize / params.FlowCount
}

// GetRounds return rounds
func (params Parameter) GetRounds() int {
	return params.Rounds
}
