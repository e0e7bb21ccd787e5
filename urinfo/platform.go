package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_platform_info_t
const (
	PlatformInfoName       uint32 = 1
	PlatformInfoVendorName uint32 = 2
	PlatformInfoVersion    uint32 = 3
	PlatformInfoExtensions uint32 = 4
	PlatformInfoProfile    uint32 = 5
	PlatformInfoBackend    uint32 = 6
	PlatformInfoAdapter    uint32 = 7
)

var PlatformInfo = &render.Domain{
	Name: "ur_platform_info_t",
	Names: map[uint32]string{
		PlatformInfoName:       "UR_PLATFORM_INFO_NAME",
		PlatformInfoVendorName: "UR_PLATFORM_INFO_VENDOR_NAME",
		PlatformInfoVersion:    "UR_PLATFORM_INFO_VERSION",
		PlatformInfoExtensions: "UR_PLATFORM_INFO_EXTENSIONS",
		PlatformInfoProfile:    "UR_PLATFORM_INFO_PROFILE",
		PlatformInfoBackend:    "UR_PLATFORM_INFO_BACKEND",
		PlatformInfoAdapter:    "UR_PLATFORM_INFO_ADAPTER",
	},
	Rules: map[uint32]render.Rule{
		PlatformInfoName:       render.CStringRule(),
		PlatformInfoVendorName: render.CStringRule(),
		PlatformInfoVersion:    render.CStringRule(),
		PlatformInfoExtensions: render.CStringRule(),
		PlatformInfoProfile:    render.CStringRule(),
		PlatformInfoBackend:    render.ScalarRule(render.U32),
		PlatformInfoAdapter:    render.HandleRule(),
	},
}

// ur_adapter_info_t
const (
	AdapterInfoBackend        uint32 = 0
	AdapterInfoReferenceCount uint32 = 1
	AdapterInfoVersion        uint32 = 2
)

var AdapterInfo = &render.Domain{
	Name: "ur_adapter_info_t",
	Names: map[uint32]string{
		AdapterInfoBackend:        "UR_ADAPTER_INFO_BACKEND",
		AdapterInfoReferenceCount: "UR_ADAPTER_INFO_REFERENCE_COUNT",
		AdapterInfoVersion:        "UR_ADAPTER_INFO_VERSION",
	},
	Rules: map[uint32]render.Rule{
		AdapterInfoBackend:        render.ScalarRule(render.U32),
		AdapterInfoReferenceCount: render.ScalarRule(render.U32),
		AdapterInfoVersion:        render.ScalarRule(render.U32),
	},
}
