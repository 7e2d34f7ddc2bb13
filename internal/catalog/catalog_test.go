package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalCatalog = `
vehicles:
  truck:
    name: Truck
    make: Acme
    model: truck.glb
    wheel_offset: 0.9
    wheelbase: 3.2
    spare: [0, 0.6, -2.1]
rims:
  plain:
    make: Acme
    name: Plain
    model: plain.glb
    width: 0.5
    od: 1
tires:
  at:
    make: Acme
    name: AT
    model: at.glb
    width: 0.26
    od: 0.895
    id: 0.43
`

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	sls, err := cat.Vehicle("mercedes_sls")
	if err != nil {
		t.Fatalf("Vehicle(mercedes_sls): %v", err)
	}
	if sls.Wheelbase != 2.7776 {
		t.Errorf("expected wheelbase 2.7776, got %v", sls.Wheelbase)
	}
	if sls.WheelOffset != 0.8 {
		t.Errorf("expected wheel offset 0.8, got %v", sls.WheelOffset)
	}

	rim, err := cat.Rim("hre_p200")
	if err != nil {
		t.Fatalf("Rim(hre_p200): %v", err)
	}
	if rim.OD != 1 || rim.Width != 0.5 {
		t.Errorf("unexpected hre_p200 dimensions: %+v", rim)
	}

	tire, err := cat.Tire("bfg_at")
	if err != nil {
		t.Fatalf("Tire(bfg_at): %v", err)
	}
	if tire.OuterRadius() != 0.4475 || tire.InnerRadius() != 0.215 {
		t.Errorf("unexpected bfg_at radii: outer=%v inner=%v", tire.OuterRadius(), tire.InnerRadius())
	}

	if cat.Defaults.Kind == 0 {
		t.Error("expected defaults section in built-in catalog")
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Default() should return the same catalog instance")
	}
}

func TestLookupFailures(t *testing.T) {
	cat, err := Load(strings.NewReader(minimalCatalog))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name    string
		lookup  func() error
		wantErr error
	}{
		{"vehicle", func() error { _, err := cat.Vehicle("sedan"); return err }, ErrUnknownVehicle},
		{"rim", func() error { _, err := cat.Rim("spoke"); return err }, ErrUnknownRim},
		{"tire", func() error { _, err := cat.Tire("slick"); return err }, ErrUnknownTire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSparePosition(t *testing.T) {
	cat, err := Load(strings.NewReader(minimalCatalog))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	truck, _ := cat.Vehicle("truck")
	pos, ok := truck.SparePosition()
	if !ok {
		t.Fatal("expected spare position")
	}
	if pos != [3]float64{0, 0.6, -2.1} {
		t.Errorf("spare position = %v", pos)
	}

	if _, ok := (VehicleEntry{}).SparePosition(); ok {
		t.Error("entry without spare should report none")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "degenerate tire",
			yaml: `
tires:
  flat:
    model: flat.glb
    width: 0.2
    od: 0.5
    id: 0.5
`,
			wantErr: ErrDegenerateTire,
		},
		{
			name: "inverted tire",
			yaml: `
tires:
  inside_out:
    model: inside_out.glb
    width: 0.2
    od: 0.4
    id: 0.6
`,
			wantErr: ErrDegenerateTire,
		},
		{
			name: "zero wheelbase",
			yaml: `
vehicles:
  cart:
    model: cart.glb
    wheelbase: 0
`,
			wantErr: ErrInvalidEntry,
		},
		{
			name: "rim without diameter",
			yaml: `
rims:
  bad:
    model: bad.glb
    width: 0.5
`,
			wantErr: ErrInvalidEntry,
		},
		{
			name: "short spare",
			yaml: `
vehicles:
  cart:
    model: cart.glb
    wheelbase: 2
    spare: [1, 2]
`,
			wantErr: ErrInvalidEntry,
		},
		{
			name: "tire without bead seat",
			yaml: `
tires:
  slick:
    model: slick.glb
    width: 0.3
    od: 0.7
`,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("vehicles: {}\nboats: {}\n"))
	if err == nil {
		t.Error("expected error for unknown top-level key")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(minimalCatalog), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cat.Vehicles) != 1 || len(cat.Rims) != 1 || len(cat.Tires) != 1 {
		t.Errorf("unexpected entry counts: %d/%d/%d", len(cat.Vehicles), len(cat.Rims), len(cat.Tires))
	}

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGroupByMake(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	vehicles := cat.VehiclesByMake()
	mercedes := vehicles["Mercedes"]
	if len(mercedes) != 2 || mercedes[0] != "mercedes_e63" || mercedes[1] != "mercedes_sls" {
		t.Errorf("Mercedes group = %v", mercedes)
	}

	rims := cat.RimsByMake()
	if got := rims["Vossen"]; len(got) != 2 {
		t.Errorf("Vossen rims = %v", got)
	}

	tires := cat.TiresByMake()
	if got := tires["Samples"]; len(got) != 5 {
		t.Errorf("Samples tires = %v", got)
	}
}
