package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_context_info_t
const (
	ContextInfoNumDevices         uint32 = 0
	ContextInfoDevices            uint32 = 1
	ContextInfoReferenceCount     uint32 = 2
	ContextInfoUSMMemcpy2DSupport uint32 = 3
	ContextInfoUSMFill2DSupport   uint32 = 4
)

var ContextInfo = &render.Domain{
	Name: "ur_context_info_t",
	Names: map[uint32]string{
		ContextInfoNumDevices:         "UR_CONTEXT_INFO_NUM_DEVICES",
		ContextInfoDevices:            "UR_CONTEXT_INFO_DEVICES",
		ContextInfoReferenceCount:     "UR_CONTEXT_INFO_REFERENCE_COUNT",
		ContextInfoUSMMemcpy2DSupport: "UR_CONTEXT_INFO_USM_MEMCPY2D_SUPPORT",
		ContextInfoUSMFill2DSupport:   "UR_CONTEXT_INFO_USM_FILL2D_SUPPORT",
	},
	Rules: map[uint32]render.Rule{
		ContextInfoNumDevices:         render.ScalarRule(render.U32),
		ContextInfoDevices:            render.HandleArrayRule(),
		ContextInfoReferenceCount:     render.ScalarRule(render.U32),
		ContextInfoUSMMemcpy2DSupport: render.ScalarRule(render.Bool),
		ContextInfoUSMFill2DSupport:   render.ScalarRule(render.Bool),
	},
}
