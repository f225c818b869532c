package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Hand-picked ABI fragments for the contracts this tool talks to. Only the
// functions actually called are included.

const erc20ABI = `[
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"_owner","type":"address"},{"name":"_spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":false,"inputs":[{"name":"_spender","type":"address"},{"name":"_value","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"type":"function"}
]`

const stargateRouterABI = `[
	{"inputs":[
		{"internalType":"uint16","name":"_dstChainId","type":"uint16"},
		{"internalType":"uint256","name":"_srcPoolId","type":"uint256"},
		{"internalType":"uint256","name":"_dstPoolId","type":"uint256"},
		{"internalType":"address payable","name":"_refundAddress","type":"address"},
		{"internalType":"uint256","name":"_amountLD","type":"uint256"},
		{"internalType":"uint256","name":"_minAmountLD","type":"uint256"},
		{"components":[
			{"internalType":"uint256","name":"dstGasForCall","type":"uint256"},
			{"internalType":"uint256","name":"dstNativeAmount","type":"uint256"},
			{"internalType":"bytes","name":"dstNativeAddr","type":"bytes"}
		],"internalType":"struct IStargateRouter.lzTxObj","name":"_lzTxParams","type":"tuple"},
		{"internalType":"bytes","name":"_to","type":"bytes"},
		{"internalType":"bytes","name":"_payload","type":"bytes"}
	],"name":"swap","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[
		{"internalType":"uint16","name":"_dstChainId","type":"uint16"},
		{"internalType":"uint8","name":"_functionType","type":"uint8"},
		{"internalType":"bytes","name":"_toAddress","type":"bytes"},
		{"internalType":"bytes","name":"_transferAndCallPayload","type":"bytes"},
		{"components":[
			{"internalType":"uint256","name":"dstGasForCall","type":"uint256"},
			{"internalType":"uint256","name":"dstNativeAmount","type":"uint256"},
			{"internalType":"bytes","name":"dstNativeAddr","type":"bytes"}
		],"internalType":"struct IStargateRouter.lzTxObj","name":"_lzTxParams","type":"tuple"}
	],"name":"quoteLayerZeroFee","outputs":[
		{"internalType":"uint256","name":"","type":"uint256"},
		{"internalType":"uint256","name":"","type":"uint256"}
	],"stateMutability":"view","type":"function"}
]`

const refuelABI = `[
	{"inputs":[
		{"internalType":"uint256","name":"destinationChainId","type":"uint256"},
		{"internalType":"address","name":"_to","type":"address"}
	],"name":"depositNativeToken","outputs":[],"stateMutability":"payable","type":"function"}
]`

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
