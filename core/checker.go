package core

import (
	"os"
	"sort"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/log"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Checker 内置算法加上配置文件中的自定义算法和报文规则
type Checker struct {
	config     *Config
	algorithms map[string]Func
	frames     map[string]*FrameRule
}

func NewChecker() *Checker {
	return &Checker{
		config:     &Config{},
		algorithms: make(map[string]Func),
		frames:     make(map[string]*FrameRule),
	}
}

func NewCheckerFromBytes(configBytes []byte) (*Checker, error) {
	config := &Config{}
	err := yaml.Unmarshal(configBytes, config)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	checker := NewChecker()
	return checker, checker.Setup(config)
}

func NewCheckerFromFile(configFile string) (*Checker, error) {
	f, err := os.Open(configFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		_ = f.Close()
	}()
	config := &Config{}
	err = yaml.NewDecoder(f).Decode(config)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", configFile)
	}
	checker := NewChecker()
	return checker, checker.Setup(config)
}

// Setup compiles the algorithms first so that frames can refer to them.
func (this *Checker) Setup(config *Config) error {
	this.config = config
	for i, alg := range config.Algorithms {
		if alg == nil {
			return errors.Errorf("algorithm #%d is empty", i)
		}
		fn, err := alg.Compile()
		if err != nil {
			return err
		}
		if err = this.Register(alg.Name, fn); err != nil {
			return err
		}
	}
	for _, frame := range config.Frames {
		if err := this.AddFrame(frame); err != nil {
			return err
		}
	}
	return nil
}

// Register adds a custom algorithm. Builtin names cannot be shadowed.
func (this *Checker) Register(name string, fn Func) error {
	if name == "" {
		return errors.New("algorithm name should not be empty")
	}
	if _, err := lookupBuiltin(name); err == nil {
		return errors.Errorf("algorithm '%s' conflicts with a builtin", name)
	}
	if _, ok := this.algorithms[name]; ok {
		return errors.Errorf("algorithm '%s' already registered", name)
	}
	this.algorithms[name] = fn
	return nil
}

func (this *Checker) AddFrame(frame *FrameRule) error {
	if frame == nil {
		return errors.New("frame should not be nil")
	}
	if _, ok := this.frames[frame.Name]; ok {
		return errors.Errorf("frame '%s' already registered", frame.Name)
	}
	fn, err := this.Lookup(frame.Algorithm)
	if err != nil {
		return errors.Wrapf(err, "frame %s", frame.Name)
	}
	if err = frame.Setup(fn); err != nil {
		return err
	}
	this.frames[frame.Name] = frame
	return nil
}

func (this *Checker) Lookup(name string) (Func, error) {
	if fn, ok := this.algorithms[name]; ok {
		return fn, nil
	}
	return lookupBuiltin(name)
}

func (this *Checker) Checksum(data []byte, name string) (uint16, error) {
	fn, err := this.Lookup(name)
	if err != nil {
		return 0, err
	}
	return fn(data), nil
}

func (this *Checker) Frame(name string) (*FrameRule, error) {
	frame, ok := this.frames[name]
	if !ok {
		return nil, errors.Errorf("frame '%s' not found", name)
	}
	return frame, nil
}

func (this *Checker) Verify(frameName string, packet []byte) error {
	frame, err := this.Frame(frameName)
	if err != nil {
		return err
	}
	ctx, err := frame.Verify(packet)
	if err != nil {
		expected, _ := ctx.GetField(FieldExpected)
		actual, _ := ctx.GetField(FieldChecksum)
		log.Debug("Frame verify failed",
			zap.String("frame", frameName),
			zap.Binary("packet", packet),
			zap.Any("expected", expected),
			zap.Any("actual", actual),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (this *Checker) Seal(frameName string, payload []byte) ([]byte, error) {
	frame, err := this.Frame(frameName)
	if err != nil {
		return nil, err
	}
	return frame.Seal(payload)
}

// Names returns the custom algorithm names followed by the builtins.
func (this *Checker) Names() []string {
	var names []string
	for name := range this.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, BuiltinNames()...)
}

func (this *Checker) FrameNames() []string {
	var names []string
	for name := range this.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
