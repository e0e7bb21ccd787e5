package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_program_info_t
const (
	ProgramInfoReferenceCount uint32 = 0
	ProgramInfoContext        uint32 = 1
	ProgramInfoNumDevices     uint32 = 2
	ProgramInfoDevices        uint32 = 3
	ProgramInfoIL             uint32 = 4
	ProgramInfoBinarySizes    uint32 = 5
	ProgramInfoNumKernels     uint32 = 6
	ProgramInfoKernelNames    uint32 = 7
)

// ur_program_build_info_t
const (
	ProgramBuildInfoStatus     uint32 = 0
	ProgramBuildInfoOptions    uint32 = 1
	ProgramBuildInfoLog        uint32 = 2
	ProgramBuildInfoBinaryType uint32 = 3
)

var ProgramInfo = &render.Domain{
	Name: "ur_program_info_t",
	Names: map[uint32]string{
		ProgramInfoReferenceCount: "UR_PROGRAM_INFO_REFERENCE_COUNT",
		ProgramInfoContext:        "UR_PROGRAM_INFO_CONTEXT",
		ProgramInfoNumDevices:     "UR_PROGRAM_INFO_NUM_DEVICES",
		ProgramInfoDevices:        "UR_PROGRAM_INFO_DEVICES",
		ProgramInfoIL:             "UR_PROGRAM_INFO_IL",
		ProgramInfoBinarySizes:    "UR_PROGRAM_INFO_BINARY_SIZES",
		ProgramInfoNumKernels:     "UR_PROGRAM_INFO_NUM_KERNELS",
		ProgramInfoKernelNames:    "UR_PROGRAM_INFO_KERNEL_NAMES",
	},
	Rules: map[uint32]render.Rule{
		ProgramInfoReferenceCount: render.ScalarRule(render.U32),
		ProgramInfoContext:        render.HandleRule(),
		ProgramInfoNumDevices:     render.ScalarRule(render.U32),
		ProgramInfoDevices:        render.HandleArrayRule(),
		ProgramInfoIL:             render.ArrayRule(render.U8),
		ProgramInfoBinarySizes:    render.ArrayRule(render.Size),
		ProgramInfoNumKernels:     render.ScalarRule(render.Size),
		ProgramInfoKernelNames:    render.CStringRule(),
	},
}

var ProgramBuildInfo = &render.Domain{
	Name: "ur_program_build_info_t",
	Names: map[uint32]string{
		ProgramBuildInfoStatus:     "UR_PROGRAM_BUILD_INFO_STATUS",
		ProgramBuildInfoOptions:    "UR_PROGRAM_BUILD_INFO_OPTIONS",
		ProgramBuildInfoLog:        "UR_PROGRAM_BUILD_INFO_LOG",
		ProgramBuildInfoBinaryType: "UR_PROGRAM_BUILD_INFO_BINARY_TYPE",
	},
	Rules: map[uint32]render.Rule{
		ProgramBuildInfoStatus:     render.ScalarRule(render.I32),
		ProgramBuildInfoOptions:    render.CStringRule(),
		ProgramBuildInfoLog:        render.CStringRule(),
		ProgramBuildInfoBinaryType: render.ScalarRule(render.U32),
	},
}

// ur_kernel_info_t
const (
	KernelInfoFunctionName   uint32 = 0
	KernelInfoNumArgs        uint32 = 1
	KernelInfoReferenceCount uint32 = 2
	KernelInfoContext        uint32 = 3
	KernelInfoProgram        uint32 = 4
	KernelInfoAttributes     uint32 = 5
)

// ur_kernel_group_info_t
const (
	KernelGroupInfoGlobalWorkSize       uint32 = 0
	KernelGroupInfoWorkGroupSize        uint32 = 1
	KernelGroupInfoCompileWorkGroupSize uint32 = 2
	KernelGroupInfoLocalMemSize         uint32 = 3
)

var KernelInfo = &render.Domain{
	Name: "ur_kernel_info_t",
	Names: map[uint32]string{
		KernelInfoFunctionName:   "UR_KERNEL_INFO_FUNCTION_NAME",
		KernelInfoNumArgs:        "UR_KERNEL_INFO_NUM_ARGS",
		KernelInfoReferenceCount: "UR_KERNEL_INFO_REFERENCE_COUNT",
		KernelInfoContext:        "UR_KERNEL_INFO_CONTEXT",
		KernelInfoProgram:        "UR_KERNEL_INFO_PROGRAM",
		KernelInfoAttributes:     "UR_KERNEL_INFO_ATTRIBUTES",
	},
	Rules: map[uint32]render.Rule{
		KernelInfoFunctionName:   render.CStringRule(),
		KernelInfoNumArgs:        render.ScalarRule(render.U32),
		KernelInfoReferenceCount: render.ScalarRule(render.U32),
		KernelInfoContext:        render.HandleRule(),
		KernelInfoProgram:        render.HandleRule(),
		KernelInfoAttributes:     render.CStringRule(),
	},
}

var KernelGroupInfo = &render.Domain{
	Name: "ur_kernel_group_info_t",
	Names: map[uint32]string{
		KernelGroupInfoGlobalWorkSize:       "UR_KERNEL_GROUP_INFO_GLOBAL_WORK_SIZE",
		KernelGroupInfoWorkGroupSize:        "UR_KERNEL_GROUP_INFO_WORK_GROUP_SIZE",
		KernelGroupInfoCompileWorkGroupSize: "UR_KERNEL_GROUP_INFO_COMPILE_WORK_GROUP_SIZE",
		KernelGroupInfoLocalMemSize:         "UR_KERNEL_GROUP_INFO_LOCAL_MEM_SIZE",
	},
	Rules: map[uint32]render.Rule{
		KernelGroupInfoGlobalWorkSize:       render.ArrayRule(render.Size),
		KernelGroupInfoWorkGroupSize:        render.ScalarRule(render.Size),
		KernelGroupInfoCompileWorkGroupSize: render.ArrayRule(render.Size),
		KernelGroupInfoLocalMemSize:         render.ScalarRule(render.Size),
	},
}
