package renderer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"deskscene/internal/graphics"
	"deskscene/internal/meshes"
	"deskscene/internal/profiling"
	"deskscene/internal/resources"
	"deskscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// textureUnit is the unit every object samples from
const textureUnit = 0

// Renderer owns the GPU side of the scene
type Renderer struct {
	log      *slog.Logger
	registry *resources.Registry

	programs map[scene.ProgramID]*graphics.Shader
	meshes   map[meshes.ID]*graphics.Mesh
	textures map[scene.TextureID]*graphics.Texture
}

// New compiles the programs, uploads every mesh and loads the scene's
// textures from textureDir. Shader failures are fatal; a texture that fails
// to load is logged and left unbound.
func New(log *slog.Logger, textureDir string) (*Renderer, error) {
	r := &Renderer{
		log:      log,
		registry: resources.NewRegistry(),
		programs: make(map[scene.ProgramID]*graphics.Shader),
		meshes:   make(map[meshes.ID]*graphics.Mesh),
		textures: make(map[scene.TextureID]*graphics.Texture),
	}

	if err := r.initPrograms(); err != nil {
		r.Dispose()
		return nil, err
	}
	if err := r.initMeshes(); err != nil {
		r.Dispose()
		return nil, err
	}
	r.initTextures(textureDir)

	lit := r.programs[scene.ProgramLit]
	lit.Use()
	lit.SetInt("uTexture", textureUnit)
	gl.UseProgram(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	r.log.Debug("renderer ready", "handles", r.registry.Live())
	return r, nil
}

func (r *Renderer) initPrograms() error {
	sources := []struct {
		id       scene.ProgramID
		name     string
		vertex   string
		fragment string
	}{
		{scene.ProgramLit, "lit", graphics.LitVertexShader, graphics.LitFragmentShader},
		{scene.ProgramLamp, "lamp", graphics.LampVertexShader, graphics.LampFragmentShader},
	}
	for _, src := range sources {
		sh, err := graphics.NewShader(src.vertex, src.fragment)
		if err != nil {
			return fmt.Errorf("%s program: %w", src.name, err)
		}
		r.programs[src.id] = sh
		if err := r.registry.Track(resources.KindProgram, src.name, sh.Delete); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) initMeshes() error {
	for _, id := range meshes.All() {
		data, err := meshes.Lookup(id)
		if err != nil {
			return err
		}
		m, err := graphics.NewMesh(data)
		if err != nil {
			return fmt.Errorf("mesh %s: %w", id, err)
		}
		r.meshes[id] = m
		if err := r.registry.Track(resources.KindMesh, string(id), m.Delete); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) initTextures(dir string) {
	for _, tf := range scene.TextureFiles() {
		path := filepath.Join(dir, tf.File)
		tex, err := graphics.LoadTexture(path)
		if err != nil {
			// Objects using this texture draw with texture 0 bound
			r.log.Warn("texture not loaded", "texture", tf.ID, "path", path, "error", err)
			continue
		}
		r.textures[tf.ID] = tex
		if err := r.registry.Track(resources.KindTexture, string(tf.ID), tex.Delete); err != nil {
			r.log.Warn("texture not tracked", "texture", tf.ID, "error", err)
		}
		r.log.Debug("texture loaded", "texture", tf.ID, "path", path,
			"width", tex.Width, "height", tex.Height, "format", tex.Format)
	}
}

// Render draws every scene object in order.
func (r *Renderer) Render(s *scene.Scene) {
	defer profiling.Track("renderer.Render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := newFrameContext(s)
	for i := range s.Objects {
		r.draw(ctx, &s.Objects[i])
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) draw(ctx FrameContext, o *scene.Object) {
	mesh, ok := r.meshes[o.Mesh]
	if !ok {
		return
	}
	sh := r.programs[o.Program]
	sh.Use()

	sh.SetMatrix4("model", ctx.Scene.ModelFor(o))
	sh.SetMatrix4("view", ctx.View)
	sh.SetMatrix4("projection", ctx.Proj)

	if o.Program == scene.ProgramLit {
		light := &ctx.Scene.Light
		sh.SetVector3("lightColor", light.Color)
		sh.SetVector3("lightPos", light.Position)
		sh.SetVector3("viewPosition", ctx.ViewPos)
		sh.SetVector2("uvScale", ctx.Scene.UVScale)
		r.textures[o.Texture].Bind(textureUnit)
	}

	mesh.Draw()
}

// ApplyWrap pushes the scene's wrap mode to the wrap target texture.
func (r *Renderer) ApplyWrap(mode scene.WrapMode) {
	tex, ok := r.textures[scene.WrapTarget]
	if !ok {
		return
	}
	tex.SetWrap(mode, scene.BorderColor)
}

// Live reports the GPU handles still owned by the renderer
func (r *Renderer) Live() map[resources.Kind]int {
	return r.registry.Live()
}

// Dispose releases every GPU handle; calling it again does nothing
func (r *Renderer) Dispose() {
	r.registry.Release()
}
