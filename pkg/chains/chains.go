package chains

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"stargate-bridger/pkg/contracts"
)

// Stargate pool ids for the supported stable tokens.
var poolIDs = map[string]int64{
	"USDC": 1,
	"USDT": 2,
}

// spec is the static description of one supported chain.
type spec struct {
	Name             string
	NativeSymbol     string
	RPCURL           string
	RouterAddress    string
	RefuelAddress    string
	Tokens           map[string]string
	LayerZeroChainID uint16
	NativeChainID    int64
	Explorer         string
	Gas              uint64
}

// specs lists every chain the tool can bridge between. Router addresses are
// the Stargate Finance: Router deployments, refuel addresses the Socket gas
// movers.
var specs = map[string]spec{
	"polygon": {
		Name:          "POLYGON",
		NativeSymbol:  "MATIC",
		RPCURL:        "https://polygon-rpc.com/",
		RouterAddress: "0x45A01E4e04F14f7A4a6702c74187c5F6222033cd",
		RefuelAddress: "0xAC313d7491910516E06FBfC2A0b5BB49bb072D91",
		Tokens: map[string]string{
			"USDC": "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
			"USDT": "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
		},
		LayerZeroChainID: 109,
		NativeChainID:    137,
		Explorer:         "polygonscan.com",
		Gas:              500_000,
	},
	"fantom": {
		Name:          "FANTOM",
		NativeSymbol:  "FTM",
		RPCURL:        "https://rpc.ftm.tools/",
		RouterAddress: "0xAf5191B0De278C7286d6C7CC6ab6BB8A73bA2Cd6",
		RefuelAddress: "0x040993fbF458b95871Cd2D73Ee2E09F4AF6d56bB",
		Tokens: map[string]string{
			"USDC": "0x04068DA6C83AFCFA0e13ba15A6696662335D5B75",
		},
		LayerZeroChainID: 112,
		NativeChainID:    250,
		Explorer:         "ftmscan.com",
		Gas:              600_000,
	},
	"avalanche": {
		Name:          "AVALANCHE",
		NativeSymbol:  "AVAX",
		RPCURL:        "https://api.avax.network/ext/bc/C/rpc",
		RouterAddress: "0x45A01E4e04F14f7A4a6702c74187c5F6222033cd",
		RefuelAddress: "0x040993fbF458b95871Cd2D73Ee2E09F4AF6d56bB",
		Tokens: map[string]string{
			"USDC": "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E",
			"USDT": "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7",
		},
		LayerZeroChainID: 106,
		NativeChainID:    43114,
		Explorer:         "snowtrace.io",
		Gas:              500_000,
	},
	"bsc": {
		Name:          "BSC",
		NativeSymbol:  "BNB",
		RPCURL:        "https://bsc-dataseed1.defibit.io/",
		RouterAddress: "0x4a364f8c717cAAD9A442737Eb7b8A55cc6cf18D8",
		RefuelAddress: "0xBE51D38547992293c89CC589105784ab60b004A9",
		Tokens: map[string]string{
			"USDT": "0x55d398326f99059fF775485246999027B3197955",
		},
		LayerZeroChainID: 102,
		NativeChainID:    56,
		Explorer:         "bscscan.com",
		Gas:              400_000,
	},
}

// TokenBinding pairs a token contract with its Stargate pool id on one chain.
type TokenBinding struct {
	Symbol   string
	Contract *contracts.ERC20
	PoolID   *big.Int
}

// Profile is the fully connected runtime view of one chain: RPC client plus
// contract handles. Profiles are built once at startup and never mutated, so
// they are safe to share across concurrent wallet tasks.
type Profile struct {
	Name             string
	NativeSymbol     string
	Client           *ethclient.Client
	Router           *contracts.Router
	Refuel           *contracts.Refuel
	LayerZeroChainID uint16
	NativeChainID    *big.Int
	Explorer         string
	Gas              uint64

	tokens map[string]*TokenBinding
}

// Token returns the binding for a token symbol supported on this chain.
func (p *Profile) Token(symbol string) (*TokenBinding, error) {
	binding, ok := p.tokens[symbol]
	if !ok {
		return nil, fmt.Errorf("token %s is not supported on %s", symbol, p.Name)
	}
	return binding, nil
}

// TxOpts returns the fixed transaction parameters for this chain.
func (p *Profile) TxOpts() contracts.TxOpts {
	return contracts.TxOpts{ChainID: p.NativeChainID, GasLimit: p.Gas}
}

// ExplorerTxURL renders the block explorer link for a transaction hash.
func (p *Profile) ExplorerTxURL(txHash common.Hash) string {
	return fmt.Sprintf("https://%s/tx/%s", p.Explorer, txHash.Hex())
}

// Registry holds the connected profiles for all supported chains.
type Registry struct {
	profiles map[string]*Profile
}

// Connect dials every supported chain and builds its contract handles.
func Connect() (*Registry, error) {
	profiles := make(map[string]*Profile, len(specs))

	for key, s := range specs {
		client, err := ethclient.Dial(s.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s RPC endpoint: %w", s.Name, err)
		}

		tokens := make(map[string]*TokenBinding, len(s.Tokens))
		for symbol, address := range s.Tokens {
			tokens[symbol] = &TokenBinding{
				Symbol:   symbol,
				Contract: contracts.NewERC20(client, common.HexToAddress(address)),
				PoolID:   big.NewInt(poolIDs[symbol]),
			}
		}

		profiles[key] = &Profile{
			Name:             s.Name,
			NativeSymbol:     s.NativeSymbol,
			Client:           client,
			Router:           contracts.NewRouter(client, common.HexToAddress(s.RouterAddress)),
			Refuel:           contracts.NewRefuel(client, common.HexToAddress(s.RefuelAddress)),
			LayerZeroChainID: s.LayerZeroChainID,
			NativeChainID:    big.NewInt(s.NativeChainID),
			Explorer:         s.Explorer,
			Gas:              s.Gas,
			tokens:           tokens,
		}
	}

	return &Registry{profiles: profiles}, nil
}

// Profile returns the connected profile for a chain key ("polygon", "bsc", …).
func (r *Registry) Profile(key string) (*Profile, error) {
	profile, ok := r.profiles[key]
	if !ok {
		return nil, fmt.Errorf("unsupported chain: %s", key)
	}
	return profile, nil
}

// Names returns the keys of all supported chains.
func Names() []string {
	names := make([]string, 0, len(specs))
	for key := range specs {
		names = append(names, key)
	}
	return names
}

// Close releases all RPC connections.
func (r *Registry) Close() {
	for _, profile := range r.profiles {
		profile.Client.Close()
	}
}
