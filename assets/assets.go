// Package assets loads the textures and sounds a host presents the game with.
//
// Every entry records whether the real file was loaded or a fallback is in
// use. A missing texture leaves the renderer to draw plain shapes; a missing
// sound is replaced by a synthesized beep. Nothing in the simulation depends
// on which.
package assets

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/slingshot/game"
)

const SampleRate = 44100

const (
	TextureBird       = "bird"
	TexturePig        = "pig"
	TextureBackground = "background"
	SoundHit          = "hit"
)

// Status tells whether an asset came from disk.
type Status int

const (
	Loaded Status = iota
	Fallback
)

func (s Status) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "fallback"
}

// Texture is a loaded image. Image is nil when Status is Fallback.
type Texture struct {
	Name   string
	Path   string
	Image  *ebiten.Image
	Status Status
	Err    error
}

// Sound is 16-bit little endian stereo PCM at SampleRate.
type Sound struct {
	Name   string
	Path   string
	PCM    []byte
	Status Status
	Err    error
}

// ImageLoader reads an image file.
type ImageLoader func(path string) (*ebiten.Image, error)

func loadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// Registry owns every asset of a host. It is created once and handed to the
// renderer and the audio sink.
type Registry struct {
	dir       string
	logger    *slog.Logger
	loadImage ImageLoader
	audioCtx  *audio.Context

	textures map[string]*Texture
	sounds   map[string]*Sound
	players  []*audio.Player
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithImageLoader replaces the file based image loader.
func WithImageLoader(loader ImageLoader) Option {
	return func(r *Registry) {
		r.loadImage = loader
	}
}

// WithAudioContext enables playback. Without a context Play does nothing.
func WithAudioContext(ctx *audio.Context) Option {
	return func(r *Registry) {
		r.audioCtx = ctx
	}
}

// NewRegistry loads bird.png, pig.png, background.png and hit.wav from dir.
// Load failures are logged and recorded, never returned.
func NewRegistry(dir string, opts ...Option) *Registry {
	r := &Registry{
		dir:       dir,
		logger:    slog.Default(),
		loadImage: loadImageFile,
		textures:  make(map[string]*Texture),
		sounds:    make(map[string]*Sound),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, name := range []string{TextureBird, TexturePig, TextureBackground} {
		r.textures[name] = r.loadTexture(name)
	}
	r.sounds[SoundHit] = r.loadSound(SoundHit, 240, 0.12)

	return r
}

func (r *Registry) loadTexture(name string) *Texture {
	texture := &Texture{Name: name, Path: filepath.Join(r.dir, name+".png")}

	img, err := r.loadImage(texture.Path)
	if err == nil && img == nil {
		err = fmt.Errorf("no image in %s", texture.Path)
	}
	if err != nil {
		r.logger.Warn("texture unavailable, drawing shapes", "texture", name, "err", err)
		texture.Status = Fallback
		texture.Err = err
		return texture
	}

	texture.Image = img
	return texture
}

func (r *Registry) loadSound(name string, beepFreq, beepSeconds float64) *Sound {
	sound := &Sound{Name: name, Path: filepath.Join(r.dir, name+".wav")}

	pcm, err := decodeWav(sound.Path)
	if err != nil {
		r.logger.Warn("sound unavailable, using beep", "sound", name, "err", err)
		sound.PCM = Beep(beepFreq, beepSeconds)
		sound.Status = Fallback
		sound.Err = err
		return sound
	}

	sound.PCM = pcm
	return sound
}

func decodeWav(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(SampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pcm, nil
}

// Texture returns the named texture, or nil for an unknown name.
func (r *Registry) Texture(name string) *Texture {
	return r.textures[name]
}

// Sound returns the named sound, or nil for an unknown name.
func (r *Registry) Sound(name string) *Sound {
	return r.sounds[name]
}

// Image returns the texture's image when it was loaded.
func (r *Registry) Image(name string) (*ebiten.Image, bool) {
	texture := r.textures[name]
	if texture == nil || texture.Status != Loaded {
		return nil, false
	}
	return texture.Image, true
}

// Play starts the named sound. Overlapping plays each get their own player.
// It reports whether playback started.
func (r *Registry) Play(name string) bool {
	sound := r.sounds[name]
	if sound == nil || r.audioCtx == nil {
		return false
	}

	player := r.audioCtx.NewPlayerFromBytes(sound.PCM)
	player.Play()
	r.players = append(r.players, player)
	return true
}

// Collect drops players that have finished. Hosts call it once a frame.
func (r *Registry) Collect() {
	live := r.players[:0]
	for _, player := range r.players {
		if player.IsPlaying() {
			live = append(live, player)
		}
	}
	clear(r.players[len(live):])
	r.players = live
}

// Playing returns the number of sounds still playing.
func (r *Registry) Playing() int {
	return len(r.players)
}

// OnEvent plays the hit sound for every destroyed target.
func (r *Registry) OnEvent(event game.Event) {
	if _, ok := event.(game.TargetDestroyed); ok {
		r.Play(SoundHit)
	}
}
