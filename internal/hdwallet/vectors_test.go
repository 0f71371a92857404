package hdwallet_test

const (
	referenceMnemonic = "distance replace obvious camera math express vacant reopen notice marble social page alley retire visa hockey title attract chunk secret pottery zoo caught poverty"
	referenceSeedHex  = "ec74ec9d74d8faa3b09d30758a03f014fce7cdf3be685989b4e60d382a5547d66af0a2638ff9a1dc8a6c8f468cca97adaa4f414e5159fc6248392df07537c511"

	referenceMasterKeyHex       = "5edaff8d16e0b1fdb942043f26846166a20c280960e3a2219405fcb42568d8f6"
	referenceMasterChainCodeHex = "22f71136cd5aa336d9f3c4f1538e9c97f464e455a8d7b5ceea001002f57f69a4"
	referenceMasterXprv         = "xprv9s21ZrQH143K2QYizFKkRxH1wS7kDZKKJCKn6LixKqWQiQohCaKKgCGhg8zTcfTuG4Rym91BvJve4s9XhySNiPtvoBBU698FFemFKruJmVz"

	// m/44'/60'/0'/0
	referenceChangeXprv = "xprvA27kD6QfSPy5fF6NyMxs5rsUrbFpA7ruvMR6Yu2GH3B9rJSdHDEBZhRCBYZ6CxPtjQkdkXUMq1iUgoPmeWzgfs7nRU7EQyjHRfp2eyEboNA"
	referenceChangeXpub = "xpub6F76cbwZGmXNsjAr5PVsSzpDQd6JZaamHaLhMHRsqNi8j6mmpkYS7Vjg2qfoDPKz5u25eVtfgPJ8iM6a22ZSBBC9NFRPkUT1wp5FuoSuNb9"

	// m/44'/60'/0'/0/0
	referenceLeaf0Xprv              = "xprvA46533iMCrC2ETn13oWVFr672FyPtuXFka86HY7EkQGnPTx2Q5Yzj3VveNxLvQ1bvw15QnVjMuyqXRHtygPsxE51rCQCSEEuMMour42nKHu"
	referenceLeaf0Compressed        = "03f296479b6540e961a2b2d3124f66cbd1e30fba41c8a175d65a027d11b1b4e986"
	referenceLeaf0Uncompressed      = "f296479b6540e961a2b2d3124f66cbd1e30fba41c8a175d65a027d11b1b4e986f555f87ddc118789fedf737f8d13750950d0162b9614a92120e15795ff7e64b5"
	referenceLeaf0ParentFingerprint = "e215bb64"

	// m/44'/60'/0'/0/0'
	referenceHardenedLeaf0Key = "19e0acee4ece4b0a9c16c6a58c075627b46a815a861e57617281761a9b0d673f"
)

var referenceLeafKeys = []string{
	"cd136e0448f2a39fb088e934f90eba0e6faa0c300ad8ea2b0c22a5736b88e073",
	"497ec2a8ab1d81a610279d0584efcf55c2ce3f873a05d307b7a792b88f108fde",
	"e6247224e6844a64543ee77801442bccca74de09eeace48e89082e5ce30ee27e",
}

// BIP32 test vector 1.
const (
	tv1SeedHex    = "000102030405060708090a0b0c0d0e0f"
	tv1MasterXprv = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	tv1MasterXpub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	tv1M0HPath    = "m/0H"
	tv1M0HXprv    = "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	tv1M0HXpub    = "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw"
	tv1M0H1Path   = "m/0'/1"
	tv1M0H1Xprv   = "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs"
)
