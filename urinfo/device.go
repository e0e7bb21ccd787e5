package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_device_info_t
const (
	DeviceInfoType                  uint32 = 0
	DeviceInfoVendorID              uint32 = 1
	DeviceInfoDeviceID              uint32 = 2
	DeviceInfoMaxComputeUnits       uint32 = 3
	DeviceInfoMaxWorkItemDimensions uint32 = 4
	DeviceInfoMaxWorkItemSizes      uint32 = 5
	DeviceInfoMaxWorkGroupSize      uint32 = 6
	DeviceInfoSingleFPConfig        uint32 = 7
	DeviceInfoMaxClockFrequency     uint32 = 8
	DeviceInfoMemoryClockRate       uint32 = 9
	DeviceInfoAddressBits           uint32 = 10
	DeviceInfoMaxMemAllocSize       uint32 = 11
	DeviceInfoGlobalMemSize         uint32 = 12
	DeviceInfoLocalMemSize          uint32 = 13
	DeviceInfoImageSupported        uint32 = 14
	DeviceInfoHostUnifiedMemory     uint32 = 15
	DeviceInfoAvailable             uint32 = 16
	DeviceInfoCompilerAvailable     uint32 = 17
	DeviceInfoName                  uint32 = 18
	DeviceInfoVendor                uint32 = 19
	DeviceInfoDriverVersion         uint32 = 20
	DeviceInfoProfile               uint32 = 21
	DeviceInfoVersion               uint32 = 22
	DeviceInfoExtensions            uint32 = 23
	DeviceInfoPlatform              uint32 = 24
	DeviceInfoParentDevice          uint32 = 25
	DeviceInfoPartitionAffinity     uint32 = 26
	DeviceInfoComponentDevices      uint32 = 27
	DeviceInfoProfilingTimerRes     uint32 = 28
	DeviceInfoUUID                  uint32 = 29
)

// ur_device_affinity_domain_flags_t
var DeviceAffinityFlags = &render.FlagSet{
	Name: "ur_device_affinity_domain_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_DEVICE_AFFINITY_DOMAIN_FLAG_NUMA"},
		{Pattern: 1 << 1, Name: "UR_DEVICE_AFFINITY_DOMAIN_FLAG_L4_CACHE"},
		{Pattern: 1 << 2, Name: "UR_DEVICE_AFFINITY_DOMAIN_FLAG_L3_CACHE"},
		{Pattern: 1 << 3, Name: "UR_DEVICE_AFFINITY_DOMAIN_FLAG_L2_CACHE"},
		{Pattern: 1 << 4, Name: "UR_DEVICE_AFFINITY_DOMAIN_FLAG_L1_CACHE"},
		{Pattern: 1 << 5, Name: "UR_DEVICE_AFFINITY_DOMAIN_FLAG_NEXT_PARTITIONABLE"},
	},
}

// ur_device_fp_capability_flags_t
var DeviceFPCapabilityFlags = &render.FlagSet{
	Name: "ur_device_fp_capability_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_CORRECTLY_ROUNDED_DIVIDE_SQRT"},
		{Pattern: 1 << 1, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_ROUND_TO_NEAREST"},
		{Pattern: 1 << 2, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_ROUND_TO_ZERO"},
		{Pattern: 1 << 3, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_ROUND_TO_INF"},
		{Pattern: 1 << 4, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_INF_NAN"},
		{Pattern: 1 << 5, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_DENORM"},
		{Pattern: 1 << 6, Name: "UR_DEVICE_FP_CAPABILITY_FLAG_FMA"},
	},
}

var DeviceInfo = &render.Domain{
	Name: "ur_device_info_t",
	Names: map[uint32]string{
		DeviceInfoType:                  "UR_DEVICE_INFO_TYPE",
		DeviceInfoVendorID:              "UR_DEVICE_INFO_VENDOR_ID",
		DeviceInfoDeviceID:              "UR_DEVICE_INFO_DEVICE_ID",
		DeviceInfoMaxComputeUnits:       "UR_DEVICE_INFO_MAX_COMPUTE_UNITS",
		DeviceInfoMaxWorkItemDimensions: "UR_DEVICE_INFO_MAX_WORK_ITEM_DIMENSIONS",
		DeviceInfoMaxWorkItemSizes:      "UR_DEVICE_INFO_MAX_WORK_ITEM_SIZES",
		DeviceInfoMaxWorkGroupSize:      "UR_DEVICE_INFO_MAX_WORK_GROUP_SIZE",
		DeviceInfoSingleFPConfig:        "UR_DEVICE_INFO_SINGLE_FP_CONFIG",
		DeviceInfoMaxClockFrequency:     "UR_DEVICE_INFO_MAX_CLOCK_FREQUENCY",
		DeviceInfoMemoryClockRate:       "UR_DEVICE_INFO_MEMORY_CLOCK_RATE",
		DeviceInfoAddressBits:           "UR_DEVICE_INFO_ADDRESS_BITS",
		DeviceInfoMaxMemAllocSize:       "UR_DEVICE_INFO_MAX_MEM_ALLOC_SIZE",
		DeviceInfoGlobalMemSize:         "UR_DEVICE_INFO_GLOBAL_MEM_SIZE",
		DeviceInfoLocalMemSize:          "UR_DEVICE_INFO_LOCAL_MEM_SIZE",
		DeviceInfoImageSupported:        "UR_DEVICE_INFO_IMAGE_SUPPORTED",
		DeviceInfoHostUnifiedMemory:     "UR_DEVICE_INFO_HOST_UNIFIED_MEMORY",
		DeviceInfoAvailable:             "UR_DEVICE_INFO_AVAILABLE",
		DeviceInfoCompilerAvailable:     "UR_DEVICE_INFO_COMPILER_AVAILABLE",
		DeviceInfoName:                  "UR_DEVICE_INFO_NAME",
		DeviceInfoVendor:                "UR_DEVICE_INFO_VENDOR",
		DeviceInfoDriverVersion:         "UR_DEVICE_INFO_DRIVER_VERSION",
		DeviceInfoProfile:               "UR_DEVICE_INFO_PROFILE",
		DeviceInfoVersion:               "UR_DEVICE_INFO_VERSION",
		DeviceInfoExtensions:            "UR_DEVICE_INFO_EXTENSIONS",
		DeviceInfoPlatform:              "UR_DEVICE_INFO_PLATFORM",
		DeviceInfoParentDevice:          "UR_DEVICE_INFO_PARENT_DEVICE",
		DeviceInfoPartitionAffinity:     "UR_DEVICE_INFO_PARTITION_AFFINITY_DOMAIN",
		DeviceInfoComponentDevices:      "UR_DEVICE_INFO_COMPONENT_DEVICES",
		DeviceInfoProfilingTimerRes:     "UR_DEVICE_INFO_PROFILING_TIMER_RESOLUTION",
		DeviceInfoUUID:                  "UR_DEVICE_INFO_UUID",
	},
	Rules: map[uint32]render.Rule{
		DeviceInfoType:                  render.ScalarRule(render.U32),
		DeviceInfoVendorID:              render.ScalarRule(render.U32),
		DeviceInfoDeviceID:              render.ScalarRule(render.U32),
		DeviceInfoMaxComputeUnits:       render.ScalarRule(render.U32),
		DeviceInfoMaxWorkItemDimensions: render.ScalarRule(render.U32),
		DeviceInfoMaxWorkItemSizes:      render.ArrayRule(render.Size),
		DeviceInfoMaxWorkGroupSize:      render.ScalarRule(render.Size),
		DeviceInfoSingleFPConfig:        render.BitmaskRule(DeviceFPCapabilityFlags),
		DeviceInfoMaxClockFrequency:     render.ScalarRule(render.U32),
		DeviceInfoMemoryClockRate:       render.ScalarRule(render.U32),
		DeviceInfoAddressBits:           render.ScalarRule(render.U32),
		DeviceInfoMaxMemAllocSize:       render.ScalarRule(render.U64),
		DeviceInfoGlobalMemSize:         render.ScalarRule(render.U64),
		DeviceInfoLocalMemSize:          render.ScalarRule(render.U64),
		DeviceInfoImageSupported:        render.ScalarRule(render.Bool),
		DeviceInfoHostUnifiedMemory:     render.ScalarRule(render.Bool),
		DeviceInfoAvailable:             render.ScalarRule(render.Bool),
		DeviceInfoCompilerAvailable:     render.ScalarRule(render.Bool),
		DeviceInfoName:                  render.CStringRule(),
		DeviceInfoVendor:                render.CStringRule(),
		DeviceInfoDriverVersion:         render.CStringRule(),
		DeviceInfoProfile:               render.CStringRule(),
		DeviceInfoVersion:               render.CStringRule(),
		DeviceInfoExtensions:            render.CStringRule(),
		DeviceInfoPlatform:              render.HandleRule(),
		DeviceInfoParentDevice:          render.HandleRule(),
		DeviceInfoPartitionAffinity:     render.BitmaskRule(DeviceAffinityFlags),
		DeviceInfoComponentDevices:      render.HandleArrayRule(),
		DeviceInfoProfilingTimerRes:     render.ScalarRule(render.Size),
		DeviceInfoUUID:                  render.ArrayRule(render.U8),
	},
}
