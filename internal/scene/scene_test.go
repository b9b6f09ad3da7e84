package scene_test

import (
	"math"
	"testing"

	"deskscene/internal/meshes"
	"deskscene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// near reports whether a and b are within 1e-5 of each other
func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func nearMat(a, b mgl32.Mat4) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestModelIsTranslateScaleRotate(t *testing.T) {
	p := scene.At(mgl32.Vec3{1, 2, 3}, 2).Rotated(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	m := p.Model()

	// Rotating +X by 90 degrees about Y gives -Z, scaling by 2, then translating.
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{1, 2, 1}
	if !near(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	T := mgl32.Translate3D(1, 2, 3)
	S := mgl32.Scale3D(2, 2, 2)
	R := mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	if !nearMat(m, T.Mul4(S).Mul4(R)) {
		t.Errorf("Model does not equal T*S*R:\n%v", m)
	}
	// The other order rotates the translation too
	if nearMat(m, R.Mul4(S).Mul4(T)) {
		t.Error("Model should not equal R*S*T")
	}
}

func TestModelWithoutRotation(t *testing.T) {
	m := scene.At(mgl32.Vec3{0.5, -1, 2.5}, 0.2).Model()
	got := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	want := mgl32.Vec3{0.7, -0.8, 2.7}
	if !near(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLightOrbits(t *testing.T) {
	l := scene.Light{Position: mgl32.Vec3{1, 0, 0}, Orbiting: true, AngularVelocity: mgl32.DegToRad(45)}

	l.Update(2) // 90 degrees
	if !near(l.Position, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected (0,0,-1) after quarter orbit, got %v", l.Position)
	}

	start := mgl32.Vec3{3.5, 0, 10}
	l.Position = start
	for i := 0; i < 100; i++ {
		l.Update(0.016)
	}
	radius := float64(l.Position.Len())
	if math.Abs(radius-float64(start.Len())) > 1e-3 {
		t.Errorf("Orbit radius drifted: %v vs %v", radius, start.Len())
	}
	if l.Position.Y() != 0 {
		t.Errorf("Orbit about Y must keep height 0, got %v", l.Position.Y())
	}
}

func TestPausedLightDoesNotMove(t *testing.T) {
	l := scene.Light{Position: mgl32.Vec3{3.5, 0, 10}, Orbiting: false, AngularVelocity: 1}
	for _, dt := range []float32{0, 0.016, 1, 1000} {
		l.Update(dt)
		if l.Position != (mgl32.Vec3{3.5, 0, 10}) {
			t.Fatalf("Paused light moved after dt=%v: %v", dt, l.Position)
		}
	}
}

func TestSelectWrapIsIdempotent(t *testing.T) {
	s := scene.Default(1200, 1000)
	if s.Wrap != scene.WrapRepeat {
		t.Fatalf("Expected initial REPEAT, got %v", s.Wrap)
	}

	if s.SelectWrap(scene.WrapRepeat) {
		t.Error("Selecting the current mode must report no change")
	}
	if !s.SelectWrap(scene.WrapClampToBorder) {
		t.Error("Selecting a new mode must report a change")
	}
	if s.SelectWrap(scene.WrapClampToBorder) {
		t.Error("Holding the key must not report repeated changes")
	}
	if s.Wrap != scene.WrapClampToBorder {
		t.Errorf("Expected CLAMP TO BORDER, got %v", s.Wrap)
	}
}

func TestUVScaleSteps(t *testing.T) {
	s := scene.Default(1200, 1000)
	s.GrowUV()
	s.GrowUV()
	s.ShrinkUV()
	if !s.UVScale.ApproxEqualThreshold(mgl32.Vec2{5.1, 5.1}, 1e-5) {
		t.Errorf("Expected (5.1, 5.1), got %v", s.UVScale)
	}
}

func TestSetOrbiting(t *testing.T) {
	s := scene.Default(1200, 1000)
	if s.SetOrbiting(true) {
		t.Error("Light already orbits, expected no change")
	}
	if !s.SetOrbiting(false) || s.Light.Orbiting {
		t.Error("Expected orbit to pause")
	}

	before := s.Light.Position
	s.Update(5)
	if s.Light.Position != before {
		t.Errorf("Paused scene moved the light: %v -> %v", before, s.Light.Position)
	}
}

func TestDefaultScene(t *testing.T) {
	s := scene.Default(1200, 1000)
	if len(s.Objects) != 10 {
		t.Fatalf("Expected 10 objects, got %d", len(s.Objects))
	}

	textures := map[scene.TextureID]bool{}
	for _, tf := range scene.TextureFiles() {
		textures[tf.ID] = true
	}
	if len(scene.TextureFiles()) != 8 {
		t.Errorf("Expected 8 texture files, got %d", len(scene.TextureFiles()))
	}

	lamps := 0
	for _, o := range s.Objects {
		if _, err := meshes.Lookup(o.Mesh); err != nil {
			t.Errorf("%s: %v", o.Name, err)
		}
		if o.Program == scene.ProgramLamp {
			lamps++
			if !o.FollowsLight {
				t.Errorf("%s: lamp must follow the light", o.Name)
			}
			continue
		}
		if !textures[o.Texture] {
			t.Errorf("%s: texture %q not in the file table", o.Name, o.Texture)
		}
	}
	if lamps != 1 {
		t.Errorf("Expected exactly one lamp, got %d", lamps)
	}
}

func TestModelForLampTracksLight(t *testing.T) {
	s := scene.Default(1200, 1000)
	var lamp *scene.Object
	for i := range s.Objects {
		if s.Objects[i].FollowsLight {
			lamp = &s.Objects[i]
		}
	}
	if lamp == nil {
		t.Fatal("no lamp object")
	}

	s.Update(1)
	centre := s.ModelFor(lamp).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !near(centre, s.Light.Position) {
		t.Errorf("Lamp centre %v does not match light %v", centre, s.Light.Position)
	}
}
