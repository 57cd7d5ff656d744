//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jgillich/go-opencl/cl"

	"quasicrystal/wave"
)

// openCLRenderer evaluates the wave sum with an OpenCL kernel and uploads
// the result like the cpu renderer does.
type openCLRenderer struct {
	context  *cl.Context
	queue    *cl.CommandQueue
	program  *cl.Program
	kernel   *cl.Kernel
	omegaBuf *cl.MemObject
	phaseBuf *cl.MemObject
	scaleBuf *cl.MemObject
	outBuf   *cl.MemObject

	width      int
	height     int
	half       bool
	deviceName string

	omega     []float32
	phase     []float32
	scale     []float32
	halfOut   []uint16
	intensity []float32
	pixels    []byte
}

const quasicrystalKernelSource = `
#define PI 3.14159265358979f

float wave_sum(
    const float x,
    const float y,
    const float time,
    const int num_waves,
    const float mix,
    const float freq,
    __constant const float* omega,
    __constant const float* phase,
    __constant const float* scale)
{
    int count = num_waves;
    if (mix > 0.0f) {
        count++;
    }
    float n = (float)num_waves + mix;
    float sum = 0.0f;
    for (int i = 0; i < count; i++) {
        float weight = i < num_waves ? 1.0f : mix;
        float angle = (float)i * PI / n;
        float k = freq * scale[i];
        float ph = time * omega[i] + phase[i];
        sum += weight * 0.5f * (cos(k * (cos(angle) * x + sin(angle) * y) + ph) + 1.0f);
    }
    return 0.5f * (cos(PI * sum) + 1.0f);
}

__kernel void quasicrystal(
    const int width,
    const int height,
    const float time,
    const int num_waves,
    const float mix,
    const float freq,
    __constant const float* omega,
    __constant const float* phase,
    __constant const float* scale,
    __global float* out)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    float x = (float)(idx % width);
    float y = (float)(idx / width);
    out[idx] = wave_sum(x, y, time, num_waves, mix, freq, omega, phase, scale);
}

__kernel void quasicrystal_half(
    const int width,
    const int height,
    const float time,
    const int num_waves,
    const float mix,
    const float freq,
    __constant const float* omega,
    __constant const float* phase,
    __constant const float* scale,
    __global half* out)
{
    int idx = get_global_id(0);
    if (idx >= width * height) {
        return;
    }
    float x = (float)(idx % width);
    float y = (float)(idx / width);
    vstore_half(wave_sum(x, y, time, num_waves, mix, freq, omega, phase, scale), idx, out);
}`

func newOpenCLRenderer(width, height int, preferHalf bool) (*openCLRenderer, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	r := &openCLRenderer{
		width:      width,
		height:     height,
		half:       preferHalf,
		deviceName: device.Name(),
		omega:      make([]float32, wave.MaxWaves),
		phase:      make([]float32, wave.MaxWaves),
		scale:      make([]float32, wave.MaxWaves),
		intensity:  make([]float32, width*height),
		pixels:     make([]byte, width*height*4),
	}
	if err := r.init(device); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func (r *openCLRenderer) init(device *cl.Device) error {
	var err error
	r.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	r.queue, err = r.context.CreateCommandQueue(device, 0)
	if err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	r.program, err = r.context.CreateProgramWithSource([]string{quasicrystalKernelSource})
	if err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := r.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	name := "quasicrystal"
	if r.half {
		name = "quasicrystal_half"
	}
	r.kernel, err = r.program.CreateKernel(name)
	if err != nil {
		return fmt.Errorf("creating OpenCL kernel %s: %w", name, err)
	}

	arrayBytes := wave.MaxWaves * int(unsafe.Sizeof(float32(0)))
	for _, buf := range []**cl.MemObject{&r.omegaBuf, &r.phaseBuf, &r.scaleBuf} {
		*buf, err = r.context.CreateEmptyBuffer(cl.MemReadOnly, arrayBytes)
		if err != nil {
			return fmt.Errorf("allocating parameter buffer: %w", err)
		}
	}
	size := r.width * r.height
	elemBytes := int(unsafe.Sizeof(float32(0)))
	if r.half {
		elemBytes = int(unsafe.Sizeof(uint16(0)))
		r.halfOut = make([]uint16, size)
	}
	r.outBuf, err = r.context.CreateEmptyBuffer(cl.MemWriteOnly, size*elemBytes)
	if err != nil {
		return fmt.Errorf("allocating output buffer: %w", err)
	}
	return nil
}

func (r *openCLRenderer) Name() string { return rendererOpenCL }

// DeviceName reports the device the kernel runs on.
func (r *openCLRenderer) DeviceName() string { return r.deviceName }

// compute runs the kernel for p and leaves the result in r.intensity.
func (r *openCLRenderer) compute(p wave.Params) error {
	for i := 0; i < wave.MaxWaves; i++ {
		r.omega[i] = float32(p.Omega[i])
		r.phase[i] = float32(p.Phase[i])
		r.scale[i] = float32(p.Scale[i])
	}
	for _, up := range []struct {
		buf  *cl.MemObject
		data []float32
	}{
		{r.omegaBuf, r.omega},
		{r.phaseBuf, r.phase},
		{r.scaleBuf, r.scale},
	} {
		if _, err := r.queue.EnqueueWriteBufferFloat32(up.buf, false, 0, up.data, nil); err != nil {
			return fmt.Errorf("writing parameter buffer: %w", err)
		}
	}
	if err := r.kernel.SetArgs(
		int32(r.width),
		int32(r.height),
		float32(p.Time),
		int32(p.NumWaves),
		float32(p.Mix),
		float32(p.Freq),
		r.omegaBuf,
		r.phaseBuf,
		r.scaleBuf,
		r.outBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	size := r.width * r.height
	if _, err := r.queue.EnqueueNDRangeKernel(r.kernel, nil, []int{size}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if r.half {
		ptr := unsafe.Pointer(&r.halfOut[0])
		byteLen := size * int(unsafe.Sizeof(uint16(0)))
		if _, err := r.queue.EnqueueReadBuffer(r.outBuf, true, 0, byteLen, ptr, nil); err != nil {
			return fmt.Errorf("reading half output: %w", err)
		}
		float16ToFloat32(r.intensity, r.halfOut)
		return nil
	}
	if _, err := r.queue.EnqueueReadBufferFloat32(r.outBuf, true, 0, r.intensity, nil); err != nil {
		return fmt.Errorf("reading output: %w", err)
	}
	return nil
}

func (r *openCLRenderer) Draw(screen *ebiten.Image, p wave.Params) error {
	if err := r.compute(p); err != nil {
		return err
	}
	greyToRGBA(r.pixels, r.intensity)
	screen.WritePixels(r.pixels)
	return nil
}

func (r *openCLRenderer) Close() {
	for _, buf := range []**cl.MemObject{&r.outBuf, &r.scaleBuf, &r.phaseBuf, &r.omegaBuf} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	if r.kernel != nil {
		r.kernel.Release()
		r.kernel = nil
	}
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.context != nil {
		r.context.Release()
		r.context = nil
	}
}
