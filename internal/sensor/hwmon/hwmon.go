// Package hwmon reads sensor chips from the Linux hwmon sysfs class.
//
// Each /sys/class/hwmon/hwmonN directory is one chip. Its attribute files are
// named <type><index>_<item>, for example temp1_input or fan2_max, and hold
// integers in driver-specific milli or micro units.
package hwmon

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensor"
)

// DefaultRoot is the sysfs hwmon class directory.
const DefaultRoot = "/sys/class/hwmon"

// BackendName prefixes every chip ID produced by this backend.
const BackendName = "hwmon"

var attrPattern = regexp.MustCompile(`^(temp|fan|in|power|curr|humidity)(\d+)_([a-z_]+)$`)

// attrType describes one sysfs attribute family.
type attrType struct {
	kind  sensor.FeatureKind
	scale float64
	order int
}

var attrTypes = map[string]attrType{
	"temp":     {kind: sensor.KindTemperature, scale: 1e3, order: 0},
	"fan":      {kind: sensor.KindFan, scale: 1, order: 1},
	"in":       {kind: sensor.KindVoltage, scale: 1e3, order: 2},
	"power":    {kind: sensor.KindPower, scale: 1e6, order: 3},
	"curr":     {kind: sensor.KindCurrent, scale: 1e3, order: 4},
	"humidity": {kind: sensor.KindHumidity, scale: 1e3, order: 5},
}

// Backend enumerates chips under a hwmon root directory.
type Backend struct {
	fs   afero.Fs
	root string
	log  logger.Logger
}

// New creates a backend reading root through fs. Tests pass an in-memory fs.
func New(fs afero.Fs, root string, log logger.Logger) *Backend {
	if root == "" {
		root = DefaultRoot
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Backend{fs: fs, root: root, log: log}
}

// NewOS creates a backend over the real filesystem.
func NewOS(root string, log logger.Logger) *Backend {
	return New(afero.NewOsFs(), root, log)
}

func (b *Backend) Name() string {
	return BackendName
}

func (b *Backend) Close() error {
	return nil
}

// Chips lists every readable chip, ordered by hwmon index.
func (b *Backend) Chips() ([]sensor.Chip, error) {
	entries, err := afero.ReadDir(b.fs, b.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", b.root, err)
	}

	type indexed struct {
		dir string
		n   int
	}
	var dirs []indexed
	for _, e := range entries {
		n, ok := hwmonIndex(e.Name())
		if !ok {
			continue
		}
		dirs = append(dirs, indexed{dir: e.Name(), n: n})
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].n < dirs[j].n })

	chips := make([]sensor.Chip, 0, len(dirs))
	for _, d := range dirs {
		chip, err := b.readChip(d.dir)
		if err != nil {
			b.log.Debug("hwmon: skipping %s: %v", d.dir, err)
			continue
		}
		chips = append(chips, chip)
	}
	return chips, nil
}

// hwmonIndex parses the N out of "hwmonN".
func hwmonIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "hwmon")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (b *Backend) readChip(dir string) (sensor.Chip, error) {
	base := filepath.Join(b.root, dir)

	// Older drivers keep their attributes on the device rather than the class dir.
	attrDir := base
	prefix, err := b.readString(filepath.Join(base, "name"))
	if err != nil {
		attrDir = filepath.Join(base, "device")
		prefix, err = b.readString(filepath.Join(attrDir, "name"))
		if err != nil {
			return sensor.Chip{}, fmt.Errorf("no name attribute: %w", err)
		}
	}

	bus, addr := b.busInfo(base)
	features, err := b.readFeatures(attrDir)
	if err != nil {
		return sensor.Chip{}, err
	}

	return sensor.Chip{
		ID:       sensor.ChipID(BackendName + ":" + dir),
		Name:     fmt.Sprintf("%s-%s-%s", prefix, bus, addr),
		Prefix:   prefix,
		Bus:      bus,
		Features: features,
	}, nil
}

// busInfo derives the bus name and address from the chip's device link.
func (b *Backend) busInfo(base string) (bus, addr string) {
	dev := filepath.Join(base, "device")
	if _, err := b.fs.Stat(dev); err != nil {
		return "virtual", "0"
	}

	if lr, ok := b.fs.(afero.LinkReader); ok {
		if target, err := lr.ReadlinkIfPossible(filepath.Join(dev, "subsystem")); err == nil {
			bus = filepath.Base(target)
		}
		if target, err := lr.ReadlinkIfPossible(dev); err == nil {
			addr = filepath.Base(target)
		}
	}
	if bus == "" {
		if modalias, err := b.readString(filepath.Join(dev, "modalias")); err == nil {
			bus, _, _ = strings.Cut(modalias, ":")
		}
	}

	if bus == "" {
		bus = "unknown"
	}
	if bus == "platform" {
		bus = "isa"
	}
	return bus, formatAddr(bus, addr)
}

// formatAddr shortens platform device names ("coretemp.0") to a padded index.
func formatAddr(bus, addr string) string {
	if addr == "" {
		return "0"
	}
	if bus == "isa" {
		if _, idx, ok := strings.Cut(addr, "."); ok {
			if n, err := strconv.Atoi(idx); err == nil {
				return fmt.Sprintf("%04d", n)
			}
		}
	}
	return addr
}

type featureKey struct {
	typ   string
	index int
}

func (b *Backend) readFeatures(dir string) ([]sensor.Feature, error) {
	entries, err := afero.ReadDir(b.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	labels := make(map[featureKey]string)
	subs := make(map[featureKey]map[sensor.SubKind]sensor.SubFeature)
	// A feature is kept once any of its attribute files exists, so an
	// unreadable input still surfaces and samples as 0.
	seen := make(map[featureKey]bool)

	for _, e := range entries {
		m := attrPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		index, _ := strconv.Atoi(m[2])
		key := featureKey{typ: m[1], index: index}
		item := m[3]
		path := filepath.Join(dir, e.Name())

		if item == "label" {
			seen[key] = true
			if label, err := b.readString(path); err == nil {
				labels[key] = label
			}
			continue
		}

		kind := sensor.SubKind(item)
		if !knownSubKind(kind) {
			continue
		}
		seen[key] = true
		value, err := b.readValue(path, key.typ, kind)
		if err != nil {
			b.log.Debug("hwmon: unreadable %s: %v", path, err)
			continue
		}
		if subs[key] == nil {
			subs[key] = make(map[sensor.SubKind]sensor.SubFeature)
		}
		subs[key][kind] = sensor.SubFeature{Name: e.Name(), Kind: kind, Value: value}
	}

	keys := make([]featureKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := attrTypes[keys[i].typ].order, attrTypes[keys[j].typ].order
		if oi != oj {
			return oi < oj
		}
		return keys[i].index < keys[j].index
	})

	features := make([]sensor.Feature, 0, len(keys))
	for _, k := range keys {
		f := sensor.Feature{
			Name:  fmt.Sprintf("%s%d", k.typ, k.index),
			Label: labels[k],
			Kind:  attrTypes[k.typ].kind,
		}
		for _, kind := range sensor.SubKinds {
			if sf, ok := subs[k][kind]; ok {
				f.SubFeatures = append(f.SubFeatures, sf)
			}
		}
		features = append(features, f)
	}
	return features, nil
}

func knownSubKind(kind sensor.SubKind) bool {
	for _, k := range sensor.SubKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (b *Backend) readString(path string) (string, error) {
	data, err := afero.ReadFile(b.fs, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readValue parses an attribute and converts it to display units.
// Alarm flags are 0 or 1 and are never scaled.
func (b *Backend) readValue(path, typ string, kind sensor.SubKind) (float64, error) {
	raw, err := b.readString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	if kind == sensor.SubAlarm || kind == sensor.SubCritAlarm {
		return v, nil
	}
	return v / attrTypes[typ].scale, nil
}
