package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Layr-Labs/multisig-stager-go/pkg/util"
)

// Prints the transferOwnership calldata for a new owner, for comparing
// against what a pending multisig transaction is about to execute.
func main() {
	if len(os.Args) != 2 || !common.IsHexAddress(os.Args[1]) {
		fmt.Fprintf(os.Stderr, "usage: %s <new-owner-address>\n", os.Args[0])
		os.Exit(1)
	}

	calldata, err := util.TransferOwnershipCalldata(common.HexToAddress(os.Args[1]))
	if err != nil {
		panic(err)
	}

	fmt.Println(hexutil.Encode(calldata))
}
