package bind_group_provider

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithDynamicStride marks the provider's uniform binding as dynamic-offset with
// slots stride bytes apart. stride must be a multiple of the device's minimum
// uniform buffer offset alignment (256 on every WebGPU adapter).
//
// Parameters:
//   - stride: byte distance between slots
//
// Returns:
//   - BindGroupProviderOption: a function that sets the stride
func WithDynamicStride(stride uint64) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.dynamicStride = stride
	}
}
