package common

import (
	ethCommon "github.com/ethereum/go-ethereum/common"
)

const (
	// REQUIRED_L2_GAS_PRICE_PER_PUBDATA is the minimum gas price per byte of
	// pubdata that an L2 transaction must offer so that the operator can
	// cover the cost of publishing the transaction data on L1.
	REQUIRED_L2_GAS_PRICE_PER_PUBDATA = 800
	// SYSTEM_UPGRADE_L2_TX_TYPE is the transaction type discriminant that
	// marks a protocol upgrade transaction, as opposed to an ordinary user
	// transaction.
	SYSTEM_UPGRADE_L2_TX_TYPE = 254
)

var (
	// ADDRESS_ONE is the account at address one, used instead of the zero
	// address where a sentinel value is needed
	ADDRESS_ONE = ethCommon.HexToAddress("0x0000000000000000000000000000000000000001")
	// ETH_ADDRESS_IN_CONTRACTS is the address the bridging contracts use to
	// represent ether among the registered assets. Same account as
	// ADDRESS_ONE.
	ETH_ADDRESS_IN_CONTRACTS = ADDRESS_ONE

	// L1_TO_L2_ALIAS_OFFSET is added to an L1 contract address to obtain the
	// aliased address its cross-chain messages are attributed to on L2
	L1_TO_L2_ALIAS_OFFSET = ethCommon.HexToAddress("0x1111000000000000000000000000000000001111")

	// Bridging system contracts, pre-deployed at fixed addresses on every L2
	// chain

	// L2_BRIDGEHUB_ADDRESS Bridgehub system contract
	L2_BRIDGEHUB_ADDRESS = ethCommon.HexToAddress("0x0000000000000000000000000000000000010002")
	// L2_ASSET_ROUTER_ADDRESS AssetRouter system contract, routes deposits
	// and withdrawals between chains
	L2_ASSET_ROUTER_ADDRESS = ethCommon.HexToAddress("0x0000000000000000000000000000000000010003")
	// L2_NATIVE_TOKEN_VAULT_ADDRESS NativeTokenVault system contract, holds
	// the L2 side of bridged token balances
	L2_NATIVE_TOKEN_VAULT_ADDRESS = ethCommon.HexToAddress("0x0000000000000000000000000000000000010004")
	// L2_MESSAGE_ROOT_ADDRESS MessageRoot system contract, aggregates
	// cross-chain message roots
	L2_MESSAGE_ROOT_ADDRESS = ethCommon.HexToAddress("0x0000000000000000000000000000000000010005")
	// L2_NULLIFIER_ADDRESS Nullifier system contract, tracks consumed
	// cross-chain messages
	L2_NULLIFIER_ADDRESS = ethCommon.HexToAddress("0x0000000000000000000000000000000000010006")

	// Kernel-space system contracts

	// DEPLOYER_SYSTEM_CONTRACT_ADDRESS ContractDeployer system contract, the
	// only account allowed to deploy code on L2
	DEPLOYER_SYSTEM_CONTRACT_ADDRESS = ethCommon.HexToAddress("0x0000000000000000000000000000000000008006")
	// L2_TO_L1_MESSENGER_SYSTEM_CONTRACT_ADDR L1Messenger system contract,
	// sends arbitrary-length messages from L2 to L1
	L2_TO_L1_MESSENGER_SYSTEM_CONTRACT_ADDR = ethCommon.HexToAddress("0x0000000000000000000000000000000000008008")

	// EMPTY_STRING_KECCAK is the keccak256 hash of the empty byte string
	EMPTY_STRING_KECCAK = ethCommon.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
)
