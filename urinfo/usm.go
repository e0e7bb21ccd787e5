package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_usm_alloc_info_t
const (
	USMAllocInfoType    uint32 = 0
	USMAllocInfoBasePtr uint32 = 1
	USMAllocInfoSize    uint32 = 2
	USMAllocInfoDevice  uint32 = 3
	USMAllocInfoPool    uint32 = 4
)

// ur_usm_host_mem_flags_t
var USMHostMemFlags = &render.FlagSet{
	Name: "ur_usm_host_mem_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_USM_HOST_MEM_FLAG_INITIAL_PLACEMENT"},
	},
}

// ur_usm_device_mem_flags_t
var USMDeviceMemFlags = &render.FlagSet{
	Name: "ur_usm_device_mem_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_USM_DEVICE_MEM_FLAG_WRITE_COMBINED"},
		{Pattern: 1 << 1, Name: "UR_USM_DEVICE_MEM_FLAG_INITIAL_PLACEMENT"},
		{Pattern: 1 << 2, Name: "UR_USM_DEVICE_MEM_FLAG_DEVICE_READ_ONLY"},
	},
}

// ur_usm_pool_flags_t
var USMPoolFlags = &render.FlagSet{
	Name: "ur_usm_pool_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_USM_POOL_FLAG_ZERO_INITIALIZE_BLOCK"},
	},
}

var USMAllocInfo = &render.Domain{
	Name: "ur_usm_alloc_info_t",
	Names: map[uint32]string{
		USMAllocInfoType:    "UR_USM_ALLOC_INFO_TYPE",
		USMAllocInfoBasePtr: "UR_USM_ALLOC_INFO_BASE_PTR",
		USMAllocInfoSize:    "UR_USM_ALLOC_INFO_SIZE",
		USMAllocInfoDevice:  "UR_USM_ALLOC_INFO_DEVICE",
		USMAllocInfoPool:    "UR_USM_ALLOC_INFO_POOL",
	},
	Rules: map[uint32]render.Rule{
		USMAllocInfoType:    render.ScalarRule(render.U32),
		USMAllocInfoBasePtr: render.ScalarRule(render.Ptr),
		USMAllocInfoSize:    render.ScalarRule(render.Size),
		USMAllocInfoDevice:  render.HandleRule(),
		USMAllocInfoPool:    render.HandleRule(),
	},
}
