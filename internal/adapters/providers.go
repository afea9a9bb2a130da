package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/update-addresses/internal/adapters/fs"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
)

// FSSet provides file system based adapters
var FSSet = wire.NewSet(
	fs.NewAddressStoreAdapter,
	wire.Bind(new(usecase.AddressRepository), new(*fs.AddressStoreAdapter)),
)

// AllAdapters provides all adapter implementations
var AllAdapters = wire.NewSet(
	FSSet,
)
