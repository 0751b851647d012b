// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package benchmark

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/termcells/termcells/tools/unicode_data"
	"github.com/termcells/termcells/tools/wcswidth"
)

var _ = fmt.Print

const ascii_printable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ `~!@#$%^&*()_+-=[]{}\\|;:'\",<.>/?"
const chinese_lorem_ipsum = `
旦海司有幼雞讀松鼻種比門真目怪少：扒裝虎怕您跑綠蝶黃，位香法士錯乙音造活羽詞坡村目園尺封鳥朋；法松夕點我冬停雪因科對只貓息加黃住蝶，明鴨乾春呢風乙時昔孝助？小紅女父故去。
飯躲裝個哥害共買去隻把氣年，己你校跟飛百拉！快石牙飽知唱想土人吹象毛吉每浪四又連見、欠耍外豆雞秋鼻。住步帶。
打六申幾麼：或皮又荷隻乙犬孝習秋還何氣；幾裏活打能花是入海乙山節會。種第共後陽沒喜姐三拍弟海肖，行知走亮包，他字幾，的木卜流旦乙左杯根毛。
您皮買身苦八手牛目地止哥彩第合麻讀午。原朋河乾種果「才波久住這香松」兄主衣快他玉坐要羽和亭但小山吉也吃耳怕，也爪斗斥可害朋許波怎祖葉卜。
`
const misc_unicode = `
‘’“”‹›«»‚„ 😀😛😇😈😉😍😎😮👍👎 —–§¶†‡©®™ →⇒•·°±−×÷¼½½¾
…µ¢£€¿¡¨´¸ˆ˜ ÀÁÂÃÄÅÆÇÈÉÊË ÌÍÎÏÐÑÒÓÔÕÖØ ŒŠÙÚÛÜÝŸÞßàá âãäåæçèéêëìí
îïðñòóôõöøœš ùúûüýÿþªºαΩ∞
`
const emoji_sequences = "\U0001f469\u200d\U0001f527 \U0001f468\u200d\U0001f469\u200d\U0001f467\u200d\U0001f466 ❤\ufe0f \U0001f44d\U0001f3fd \U0001f1ee\U0001f1f3 ♻\ufe0f#\ufe0f\u20e3 "

type benchmark_options struct {
	repeat_count int
	table        *unicode_data.CellTable
}

func benchmark_data(data string, opts benchmark_options, measure func(string, *unicode_data.CellTable) int) (duration time.Duration) {
	lines := strings.Split(data, "\n")
	sink := 0
	start := time.Now()
	for repeat_count := opts.repeat_count; repeat_count > 0; repeat_count-- {
		for _, line := range lines {
			sink += measure(line, opts.table)
		}
	}
	duration = time.Since(start) / time.Duration(opts.repeat_count)
	if sink < 0 {
		panic("negative width")
	}
	return duration
}

var rand_src = sync.OnceValue(func() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
})

func random_string_of_bytes(n int, alphabet string) string {
	b := make([]byte, n)
	al := len(alphabet)
	src := rand_src()
	for i := 0; i < n; i++ {
		b[i] = alphabet[src.Intn(al)]
	}
	return string(b)
}

// lines of random ASCII text with occasional newlines
func random_lines(n int) string {
	data := []byte(random_string_of_bytes(n, ascii_printable))
	src := rand_src()
	for i := range data {
		if src.Intn(80) == 0 {
			data[i] = '\n'
		}
	}
	return string(data)
}

type result struct {
	desc     string
	data_sz  int
	duration time.Duration
}

func cell_length(text string, table *unicode_data.CellTable) int {
	return wcswidth.StringwidthWithTable(text, table)
}

func spans(text string, table *unicode_data.CellTable) int {
	return len(wcswidth.NewCellString(text, wcswidth.WithTable(table)).Spans())
}

func chop(text string, table *unicode_data.CellTable) int {
	return len(wcswidth.NewCellString(text, wcswidth.WithTable(table)).Chop(17))
}

func simple_ascii(opts benchmark_options) result {
	data := random_lines(1024*1024 + 13)
	return result{"Only ASCII chars", len(data), benchmark_data(data, opts, cell_length)}
}

func unicode(opts benchmark_options) result {
	data := strings.Repeat(chinese_lorem_ipsum+misc_unicode, 64)
	return result{"Unicode chars", len(data), benchmark_data(data, opts, cell_length)}
}

func emoji(opts benchmark_options) result {
	data := strings.Repeat(emoji_sequences+"\n", 4096)
	return result{"Emoji sequences", len(data), benchmark_data(data, opts, cell_length)}
}

func graphemes(opts benchmark_options) result {
	data := strings.Repeat(chinese_lorem_ipsum+misc_unicode+emoji_sequences, 64)
	return result{"Grapheme spans", len(data), benchmark_data(data, opts, spans)}
}

func chop_lines(opts benchmark_options) result {
	data := strings.Repeat(chinese_lorem_ipsum+misc_unicode+emoji_sequences, 64)
	return result{"Chop into lines", len(data), benchmark_data(data, opts, chop)}
}

var divs = []time.Duration{
	time.Duration(1), time.Duration(10), time.Duration(100), time.Duration(1000)}

func round(d time.Duration, digits int) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second / divs[digits])
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / divs[digits])
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / divs[digits])
	}
	return d
}

func present_result(w io.Writer, r result, col_width int) {
	rate := float64(r.data_sz) / max(r.duration, time.Nanosecond).Seconds()
	rate /= 1024. * 1024.
	f := fmt.Sprintf("%%-%ds", col_width)
	fmt.Fprintf(w, "  "+f+" : %-10v @ %-7.1f MB/s\n", r.desc, round(r.duration, 2), rate)
}

func all_benchmarks() []string {
	return []string{
		"ascii", "unicode", "emoji", "graphemes", "chop",
	}
}

var benchmarks = map[string]func(benchmark_options) result{
	"ascii": simple_ascii, "unicode": unicode, "emoji": emoji, "graphemes": graphemes, "chop": chop_lines,
}

func main(w io.Writer, args []string, opts benchmark_options) (err error) {
	if len(args) == 0 {
		args = all_benchmarks()
	}
	for _, a := range args {
		if benchmarks[a] == nil {
			return fmt.Errorf("Unknown benchmark: %s", a)
		}
	}
	var results []result
	// warm up so that building the width tables is not measured
	benchmark_data(ascii_printable+chinese_lorem_ipsum+misc_unicode+emoji_sequences, benchmark_options{repeat_count: 1, table: opts.table}, spans)
	for _, name := range all_benchmarks() {
		if slices.Index(args, name) >= 0 {
			results = append(results, benchmarks[name](opts))
		}
	}

	fmt.Fprintf(w, "Results for unicode %s, averaged over %d runs:\n", opts.table.Name, opts.repeat_count)
	mlen := 10
	for _, r := range results {
		mlen = max(mlen, len(r.desc))
	}
	for _, r := range results {
		present_result(w, r, mlen)
	}
	return
}

func EntryPoint(root *cobra.Command) {
	repeat_count := 10
	sc := &cobra.Command{
		Use:   "benchmark [benchmark ...]",
		Short: "Measure the throughput of the width engine",
		Long:  "To run only particular benchmarks, specify them on the command line from the set: " + strings.Join(all_benchmarks(), ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := cmd.Flags().GetString("unicode-version")
			if err != nil {
				version = unicode_data.AUTO
			}
			return main(cmd.OutOrStdout(), args, benchmark_options{repeat_count: max(1, repeat_count), table: unicode_data.Load(version)})
		},
	}
	sc.Flags().IntVarP(&repeat_count, "repeat", "r", repeat_count, "The number of times to run each benchmark")
	root.AddCommand(sc)
}
