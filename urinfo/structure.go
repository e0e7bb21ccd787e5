package urinfo

import "github.com/unifiedrt/urprint/render"

// ur_structure_type_t, the record-kind domain for extension chains.
const (
	StructureTypeContextProperties         uint32 = 0
	StructureTypeQueueProperties           uint32 = 1
	StructureTypeBufferProperties          uint32 = 2
	StructureTypeUSMDesc                   uint32 = 3
	StructureTypeUSMHostDesc               uint32 = 4
	StructureTypeUSMDeviceDesc             uint32 = 5
	StructureTypeUSMPoolDesc               uint32 = 6
	StructureTypeSamplerDesc               uint32 = 7
	StructureTypeDevicePartitionProperties uint32 = 8
	StructureTypeKernelArgMemObjProperties uint32 = 9
)

// ur_context_flags_t
var ContextFlags = &render.FlagSet{
	Name: "ur_context_flags_t",
	Flags: []render.Flag{
		{Pattern: 1 << 0, Name: "UR_CONTEXT_FLAG_USE_NATIVE_MEMORY"},
	},
}

// Structures maps each structure-type tag to its declarative layout. The
// stype and pNext header fields are implicit; field offsets start past the
// 16-byte header.
var Structures = &render.RecordSet{
	Name: "ur_structure_type_t",
	Records: map[uint32]*render.RecordDef{
		StructureTypeContextProperties: {
			Name:     "ur_context_properties_t",
			TypeName: "UR_STRUCTURE_TYPE_CONTEXT_PROPERTIES",
			Size:     24,
			Fields: []render.Field{
				{Name: "flags", Offset: 16, Rule: render.BitmaskRule(ContextFlags)},
			},
		},
		StructureTypeQueueProperties: {
			Name:     "ur_queue_properties_t",
			TypeName: "UR_STRUCTURE_TYPE_QUEUE_PROPERTIES",
			Size:     24,
			Fields: []render.Field{
				{Name: "flags", Offset: 16, Rule: render.BitmaskRule(QueueFlags)},
			},
		},
		StructureTypeBufferProperties: {
			Name:     "ur_buffer_properties_t",
			TypeName: "UR_STRUCTURE_TYPE_BUFFER_PROPERTIES",
			Size:     24,
			Fields: []render.Field{
				{Name: "pHost", Offset: 16, Ptr: &render.Target{Kind: render.TargetVoid}},
			},
		},
		StructureTypeUSMDesc: {
			Name:     "ur_usm_desc_t",
			TypeName: "UR_STRUCTURE_TYPE_USM_DESC",
			Size:     24,
			Fields: []render.Field{
				{Name: "hints", Offset: 16, Rule: render.ScalarRule(render.U32)},
				{Name: "align", Offset: 20, Rule: render.ScalarRule(render.U32)},
			},
		},
		StructureTypeUSMHostDesc: {
			Name:     "ur_usm_host_desc_t",
			TypeName: "UR_STRUCTURE_TYPE_USM_HOST_DESC",
			Size:     24,
			Fields: []render.Field{
				{Name: "flags", Offset: 16, Rule: render.BitmaskRule(USMHostMemFlags)},
			},
		},
		StructureTypeUSMDeviceDesc: {
			Name:     "ur_usm_device_desc_t",
			TypeName: "UR_STRUCTURE_TYPE_USM_DEVICE_DESC",
			Size:     24,
			Fields: []render.Field{
				{Name: "flags", Offset: 16, Rule: render.BitmaskRule(USMDeviceMemFlags)},
			},
		},
		StructureTypeUSMPoolDesc: {
			Name:     "ur_usm_pool_desc_t",
			TypeName: "UR_STRUCTURE_TYPE_USM_POOL_DESC",
			Size:     24,
			Fields: []render.Field{
				{Name: "flags", Offset: 16, Rule: render.BitmaskRule(USMPoolFlags)},
			},
		},
		StructureTypeSamplerDesc: {
			Name:     "ur_sampler_desc_t",
			TypeName: "UR_STRUCTURE_TYPE_SAMPLER_DESC",
			Size:     32,
			Fields: []render.Field{
				{Name: "normalizedCoords", Offset: 16, Rule: render.ScalarRule(render.Bool)},
				{Name: "addressingMode", Offset: 20, Rule: render.ScalarRule(render.U32)},
				{Name: "filterMode", Offset: 24, Rule: render.ScalarRule(render.U32)},
			},
		},
		StructureTypeDevicePartitionProperties: {
			Name:     "ur_device_partition_properties_t",
			TypeName: "UR_STRUCTURE_TYPE_DEVICE_PARTITION_PROPERTIES",
			Size:     32,
			Fields: []render.Field{
				{Name: "pProperties", Offset: 16, Ptr: &render.Target{Kind: render.TargetScalar, Elem: render.U32}},
				{Name: "PropCount", Offset: 24, Rule: render.ScalarRule(render.Size)},
			},
		},
		StructureTypeKernelArgMemObjProperties: {
			Name:     "ur_kernel_arg_mem_obj_properties_t",
			TypeName: "UR_STRUCTURE_TYPE_KERNEL_ARG_MEM_OBJ_PROPERTIES",
			Size:     24,
			Fields: []render.Field{
				{Name: "memoryAccess", Offset: 16, Rule: render.BitmaskRule(MemFlags)},
			},
		},
	},
}
