package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_event_info_t
const (
	EventInfoCommandQueue           uint32 = 0
	EventInfoContext                uint32 = 1
	EventInfoCommandType            uint32 = 2
	EventInfoCommandExecutionStatus uint32 = 3
	EventInfoReferenceCount         uint32 = 4
)

// ur_profiling_info_t
const (
	ProfilingInfoCommandQueued   uint32 = 0
	ProfilingInfoCommandSubmit   uint32 = 1
	ProfilingInfoCommandStart    uint32 = 2
	ProfilingInfoCommandEnd      uint32 = 3
	ProfilingInfoCommandComplete uint32 = 4
)

var EventInfo = &render.Domain{
	Name: "ur_event_info_t",
	Names: map[uint32]string{
		EventInfoCommandQueue:           "UR_EVENT_INFO_COMMAND_QUEUE",
		EventInfoContext:                "UR_EVENT_INFO_CONTEXT",
		EventInfoCommandType:            "UR_EVENT_INFO_COMMAND_TYPE",
		EventInfoCommandExecutionStatus: "UR_EVENT_INFO_COMMAND_EXECUTION_STATUS",
		EventInfoReferenceCount:         "UR_EVENT_INFO_REFERENCE_COUNT",
	},
	Rules: map[uint32]render.Rule{
		EventInfoCommandQueue:           render.HandleRule(),
		EventInfoContext:                render.HandleRule(),
		EventInfoCommandType:            render.ScalarRule(render.U32),
		EventInfoCommandExecutionStatus: render.ScalarRule(render.I32),
		EventInfoReferenceCount:         render.ScalarRule(render.U32),
	},
}

var ProfilingInfo = &render.Domain{
	Name: "ur_profiling_info_t",
	Names: map[uint32]string{
		ProfilingInfoCommandQueued:   "UR_PROFILING_INFO_COMMAND_QUEUED",
		ProfilingInfoCommandSubmit:   "UR_PROFILING_INFO_COMMAND_SUBMIT",
		ProfilingInfoCommandStart:    "UR_PROFILING_INFO_COMMAND_START",
		ProfilingInfoCommandEnd:      "UR_PROFILING_INFO_COMMAND_END",
		ProfilingInfoCommandComplete: "UR_PROFILING_INFO_COMMAND_COMPLETE",
	},
	Rules: map[uint32]render.Rule{
		ProfilingInfoCommandQueued:   render.ScalarRule(render.U64),
		ProfilingInfoCommandSubmit:   render.ScalarRule(render.U64),
		ProfilingInfoCommandStart:    render.ScalarRule(render.U64),
		ProfilingInfoCommandEnd:      render.ScalarRule(render.U64),
		ProfilingInfoCommandComplete: render.ScalarRule(render.U64),
	},
}
