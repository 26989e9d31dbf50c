package bind_group_provider

import "testing"

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("frame")
	if p.Label() != "frame" {
		t.Fatalf("Label = %q, want frame", p.Label())
	}
	if p.DynamicStride() != 0 {
		t.Fatalf("DynamicStride = %d, want 0", p.DynamicStride())
	}
	if p.BindGroup() != nil || p.Buffer(0) != nil || p.TextureView(0) != nil || p.Sampler(1) != nil {
		t.Fatal("new provider should hold no GPU resources")
	}

	d := NewBindGroupProvider("draw", WithDynamicStride(256))
	if d.DynamicStride() != 256 {
		t.Fatalf("DynamicStride = %d, want 256", d.DynamicStride())
	}
}

func TestProviderCountsAndRelease(t *testing.T) {
	p := NewBindGroupProvider("mesh")
	p.SetIndexCount(36)
	p.SetInstanceBuffer(nil, 1000)
	if p.IndexCount() != 36 || p.InstanceCount() != 1000 {
		t.Fatalf("counts = %d, %d", p.IndexCount(), p.InstanceCount())
	}
	p.Release()
	if p.IndexCount() != 0 || p.InstanceCount() != 0 {
		t.Fatal("Release should reset counts")
	}
}

func TestSlotWrite(t *testing.T) {
	data := []byte{1, 2, 3}
	tests := []struct {
		name string
		p    BindGroupProvider
		slot int
		want uint64
	}{
		{"first slot", NewBindGroupProvider("draw", WithDynamicStride(256)), 0, 0},
		{"later slot", NewBindGroupProvider("draw", WithDynamicStride(256)), 5, 1280},
		{"no stride", NewBindGroupProvider("frame"), 5, 0},
	}
	for _, tt := range tests {
		w := SlotWrite(tt.p, 0, tt.slot, data)
		if w.Offset != tt.want || w.Provider != tt.p || w.Binding != 0 || len(w.Data) != 3 {
			t.Errorf("%s: got %+v, want offset %d", tt.name, w, tt.want)
		}
	}
}
