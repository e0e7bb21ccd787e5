package urinfo

import "github.com/unifiedrt/urprint/render"

// domains indexes every property domain by its C type name. Capture files
// reference domains textually.
var domains = map[string]*render.Domain{
	AdapterInfo.Name:      AdapterInfo,
	ContextInfo.Name:      ContextInfo,
	DeviceInfo.Name:       DeviceInfo,
	EventInfo.Name:        EventInfo,
	KernelGroupInfo.Name:  KernelGroupInfo,
	KernelInfo.Name:       KernelInfo,
	MemInfo.Name:          MemInfo,
	PlatformInfo.Name:     PlatformInfo,
	ProfilingInfo.Name:    ProfilingInfo,
	ProgramBuildInfo.Name: ProgramBuildInfo,
	ProgramInfo.Name:      ProgramInfo,
	QueueInfo.Name:        QueueInfo,
	SamplerInfo.Name:      SamplerInfo,
	USMAllocInfo.Name:     USMAllocInfo,
}

// DomainByName returns the property domain registered under the C type name.
func DomainByName(name string) (*render.Domain, bool) {
	d, ok := domains[name]
	return d, ok
}

// DomainNames returns the registered domain names; useful for CLI help and
// capture validation diagnostics.
func DomainNames() []string {
	names := make([]string, 0, len(domains))
	for n := range domains {
		names = append(names, n)
	}
	return names
}
