package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_queue_info_t
const (
	QueueInfoContext        uint32 = 0
	QueueInfoDevice         uint32 = 1
	QueueInfoDeviceDefault  uint32 = 2
	QueueInfoFlags          uint32 = 3
	QueueInfoReferenceCount uint32 = 4
	QueueInfoSize           uint32 = 5
	QueueInfoEmpty          uint32 = 6
)

// ur_queue_flags_t
var QueueFlags = &render.FlagSet{
	Name: "ur_queue_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_QUEUE_FLAG_OUT_OF_ORDER_EXEC_MODE_ENABLE"},
		{Pattern: 1 << 1, Name: "UR_QUEUE_FLAG_PROFILING_ENABLE"},
		{Pattern: 1 << 2, Name: "UR_QUEUE_FLAG_ON_DEVICE"},
		{Pattern: 1 << 3, Name: "UR_QUEUE_FLAG_ON_DEVICE_DEFAULT"},
		{Pattern: 1 << 4, Name: "UR_QUEUE_FLAG_DISCARD_EVENTS"},
		{Pattern: 1 << 5, Name: "UR_QUEUE_FLAG_PRIORITY_LOW"},
		{Pattern: 1 << 6, Name: "UR_QUEUE_FLAG_PRIORITY_HIGH"},
		{Pattern: 1 << 7, Name: "UR_QUEUE_FLAG_SUBMISSION_BATCHED"},
		{Pattern: 1 << 8, Name: "UR_QUEUE_FLAG_SUBMISSION_IMMEDIATE"},
		{Pattern: 1 << 9, Name: "UR_QUEUE_FLAG_USE_DEFAULT_STREAM"},
		{Pattern: 1 << 10, Name: "UR_QUEUE_FLAG_SYNC_WITH_DEFAULT_STREAM"},
	},
}

var QueueInfo = &render.Domain{
	Name: "ur_queue_info_t",
	Names: map[uint32]string{
		QueueInfoContext:        "UR_QUEUE_INFO_CONTEXT",
		QueueInfoDevice:         "UR_QUEUE_INFO_DEVICE",
		QueueInfoDeviceDefault:  "UR_QUEUE_INFO_DEVICE_DEFAULT",
		QueueInfoFlags:          "UR_QUEUE_INFO_FLAGS",
		QueueInfoReferenceCount: "UR_QUEUE_INFO_REFERENCE_COUNT",
		QueueInfoSize:           "UR_QUEUE_INFO_SIZE",
		QueueInfoEmpty:          "UR_QUEUE_INFO_EMPTY",
	},
	Rules: map[uint32]render.Rule{
		QueueInfoContext:        render.HandleRule(),
		QueueInfoDevice:         render.HandleRule(),
		QueueInfoDeviceDefault:  render.HandleRule(),
		QueueInfoFlags:          render.BitmaskRule(QueueFlags),
		QueueInfoReferenceCount: render.ScalarRule(render.U32),
		QueueInfoSize:           render.ScalarRule(render.U32),
		QueueInfoEmpty:          render.ScalarRule(render.Bool),
	},
}
