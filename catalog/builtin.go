package catalog

import (
	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// 組み込みカタログの名前
const (
	BuiltinRaw      = "builtin/raw"
	BuiltinRemapped = "builtin/remapped"
)

// VocabEntry はテキスト断片が対応するトークンIDを記録します。
type VocabEntry struct {
	Text     string
	Tokens   []int
	Remapped []int
}

// Vocabulary は組み込みパターンの作成に使った cl100k_base の参照表です。
// 運用者向けの資料であり、計算には使いません。
var Vocabulary = []VocabEntry{
	{Text: "Hello", Tokens: []int{9906}, Remapped: []int{906}},
	{Text: " world", Tokens: []int{1917}, Remapped: []int{917}},
	{Text: "world", Tokens: []int{14957}},
	{Text: "!", Tokens: []int{0}, Remapped: []int{0}},
	{Text: "What", Tokens: []int{3923}},
	{Text: " is", Tokens: []int{374}},
	{Text: "What is", Tokens: []int{3923, 374}, Remapped: []int{923, 374}},
	{Text: " your", Tokens: []int{701}, Remapped: []int{701}},
	{Text: " name", Tokens: []int{836}, Remapped: []int{836}},
	{Text: "?", Tokens: []int{30}, Remapped: []int{30}},
	{Text: "Whats", Tokens: []int{59175}},
	{Text: "Hasher", Tokens: []int{6504, 261}},
	{Text: "hasher", Tokens: []int{8460, 261}},
}

const demoSource = "demo.txt"

// Raw は生IDのコーパスを返します。
// "Hello world!" とHasher/hasherの変種、"What is your name?" の1ステップ継続です。
func Raw() *Catalog {
	zero := frame.ZeroFeatures()
	return mustNew(BuiltinRaw,
		// Hello ->  world
		Pattern{Source: demoSource, ChunkID: 1, Tokens: []int{9906}, Target: 1917, Features: zero},
		//  world -> !
		Pattern{Source: demoSource, ChunkID: 2, Tokens: []int{1917}, Target: 0, Features: zero},
		// world -> !
		Pattern{Source: demoSource, ChunkID: 3, Tokens: []int{14957}, Target: 0, Features: zero},
		// Hasher ->  world
		Pattern{Source: demoSource, ChunkID: 4, Tokens: []int{6504, 261}, Target: 1917, Features: zero},
		// hasher ->  world
		Pattern{Source: demoSource, ChunkID: 5, Tokens: []int{8460, 261}, Target: 1917, Features: zero},
		// What ->  is
		Pattern{Source: demoSource, ChunkID: 6, Tokens: []int{3923}, Target: 374, Features: zero},
		//  is ->  your
		Pattern{Source: demoSource, ChunkID: 7, Tokens: []int{374}, Target: 701, Features: zero},
		//  your ->  name
		Pattern{Source: demoSource, ChunkID: 8, Tokens: []int{701}, Target: 836, Features: zero},
		//  name -> ?
		Pattern{Source: demoSource, ChunkID: 9, Tokens: []int{836}, Target: 30, Features: zero},
		// Whats ->  your
		Pattern{Source: demoSource, ChunkID: 10, Tokens: []int{59175}, Target: 701, Features: zero},
	)
}

// Remapped は語彙を制限したコーパスを返します。トークンは [0, 1000) に縮約済みです。
// ワード0-3はチャンクごとのマーカー、ワード4はステップ番号、ワード9はパターン種別、
// ワード10は固定フラグ0x1000、ワード11はステップインデックスです。
func Remapped() *Catalog {
	return mustNew(BuiltinRemapped,
		// Hello ->  world
		Pattern{Source: demoSource, ChunkID: 1, Tokens: []int{906}, Target: 917,
			Features: frame.MustFeatureVector(0x11111111, 0x22222222, 0x33333333, 0x44444444, 0x00000001, 0, 0, 0, 0, 0, 0x1000, 0)},
		// Hello world -> !
		Pattern{Source: demoSource, ChunkID: 1, Tokens: []int{906, 917}, Target: 0,
			Features: frame.MustFeatureVector(0x11111111, 0x22222222, 0x33333333, 0x44444444, 0x00000002, 0, 0, 0, 0, 0, 0x1000, 1)},
		// What is ->  your
		Pattern{Source: demoSource, ChunkID: 2, Tokens: []int{923, 374}, Target: 701,
			Features: frame.MustFeatureVector(0xAAAAAAAA, 0xBBBBBBBB, 0xCCCCCCCC, 0xDDDDDDDD, 0x00000001, 0, 0, 0, 0, 1, 0x1000, 0)},
		// What is your ->  name
		Pattern{Source: demoSource, ChunkID: 2, Tokens: []int{923, 374, 701}, Target: 836,
			Features: frame.MustFeatureVector(0xAAAAAAAA, 0xBBBBBBBB, 0xCCCCCCCC, 0xDDDDDDDD, 0x00000002, 0, 0, 0, 0, 1, 0x1000, 1)},
		// What is your name -> ?
		Pattern{Source: demoSource, ChunkID: 2, Tokens: []int{923, 374, 701, 836}, Target: 30,
			Features: frame.MustFeatureVector(0xAAAAAAAA, 0xBBBBBBBB, 0xCCCCCCCC, 0xDDDDDDDD, 0x00000003, 0, 0, 0, 0, 1, 0x1000, 2)},
	)
}

// ForMode はmode用に作られた組み込みカタログを返す
func ForMode(mode frame.Mode) (*Catalog, error) {
	switch mode {
	case frame.Raw:
		return Raw(), nil
	case frame.Remapped:
		return Remapped(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownMode, "builtin catalog for mode %d", int(mode))
	}
}

func mustNew(name string, patterns ...Pattern) *Catalog {
	c, err := New(name, patterns...)
	if err != nil {
		panic(err)
	}
	return c
}
