package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_mem_info_t
const (
	MemInfoSize           uint32 = 0
	MemInfoContext        uint32 = 1
	MemInfoReferenceCount uint32 = 2
)

// ur_mem_flags_t
var MemFlags = &render.FlagSet{
	Name: "ur_mem_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_MEM_FLAG_READ_WRITE"},
		{Pattern: 1 << 1, Name: "UR_MEM_FLAG_WRITE_ONLY"},
		{Pattern: 1 << 2, Name: "UR_MEM_FLAG_READ_ONLY"},
		{Pattern: 1 << 3, Name: "UR_MEM_FLAG_USE_HOST_POINTER"},
		{Pattern: 1 << 4, Name: "UR_MEM_FLAG_ALLOC_HOST_POINTER"},
		{Pattern: 1 << 5, Name: "UR_MEM_FLAG_ALLOC_COPY_HOST_POINTER"},
	},
}

// ur_map_flags_t
var MapFlags = &render.FlagSet{
	Name: "ur_map_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_MAP_FLAG_READ"},
		{Pattern: 1 << 1, Name: "UR_MAP_FLAG_WRITE"},
		{Pattern: 1 << 2, Name: "UR_MAP_FLAG_WRITE_INVALIDATE_REGION"},
	},
}

var MemInfo = &render.Domain{
	Name: "ur_mem_info_t",
	Names: map[uint32]string{
		MemInfoSize:           "UR_MEM_INFO_SIZE",
		MemInfoContext:        "UR_MEM_INFO_CONTEXT",
		MemInfoReferenceCount: "UR_MEM_INFO_REFERENCE_COUNT",
	},
	Rules: map[uint32]render.Rule{
		MemInfoSize:           render.ScalarRule(render.Size),
		MemInfoContext:        render.HandleRule(),
		MemInfoReferenceCount: render.ScalarRule(render.U32),
	},
}

// ur_sampler_info_t
const (
	SamplerInfoReferenceCount   uint32 = 0
	SamplerInfoContext          uint32 = 1
	SamplerInfoNormalizedCoords uint32 = 2
	SamplerInfoAddressingMode   uint32 = 3
	SamplerInfoFilterMode       uint32 = 4
)

var SamplerInfo = &render.Domain{
	Name: "ur_sampler_info_t",
	Names: map[uint32]string{
		SamplerInfoReferenceCount:   "UR_SAMPLER_INFO_REFERENCE_COUNT",
		SamplerInfoContext:          "UR_SAMPLER_INFO_CONTEXT",
		SamplerInfoNormalizedCoords: "UR_SAMPLER_INFO_NORMALIZED_COORDS",
		SamplerInfoAddressingMode:   "UR_SAMPLER_INFO_ADDRESSING_MODE",
		SamplerInfoFilterMode:       "UR_SAMPLER_INFO_FILTER_MODE",
	},
	Rules: map[uint32]render.Rule{
		SamplerInfoReferenceCount:   render.ScalarRule(render.U32),
		SamplerInfoContext:          render.HandleRule(),
		SamplerInfoNormalizedCoords: render.ScalarRule(render.Bool),
		SamplerInfoAddressingMode:   render.ScalarRule(render.U32),
		SamplerInfoFilterMode:       render.ScalarRule(render.U32),
	},
}
