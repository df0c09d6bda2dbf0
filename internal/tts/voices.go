package tts

// VoiceOption is one selectable voice of a provider.
type VoiceOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var edgeVoices = []VoiceOption{
	{Value: "zh-CN-XiaoxiaoNeural", Label: "晓晓（女声）"},
	{Value: "zh-CN-YunxiNeural", Label: "云希（男声）"},
	{Value: "zh-CN-YunyangNeural", Label: "云扬（男声）"},
	{Value: "zh-CN-XiaoyiNeural", Label: "晓伊（女声）"},
	{Value: "zh-CN-YunjianNeural", Label: "云健（男声）"},
	{Value: "zh-CN-YunxiaNeural", Label: "云夏（男声）"},
	{Value: "zh-CN-XiaohanNeural", Label: "晓涵（女声）"},
	{Value: "zh-CN-XiaomoNeural", Label: "晓墨（女声）"},
	{Value: "zh-CN-XiaoxuanNeural", Label: "晓萱（女声）"},
	{Value: "zh-CN-XiaoruiNeural", Label: "晓睿（女声）"},
	{Value: "zh-CN-YunfengNeural", Label: "云枫（男声）"},
	{Value: "zh-CN-YunzeNeural", Label: "云泽（男声）"},
}

// voiceOptions maps provider identifiers to their voice lists. Edge and
// Microsoft share the same neural voices.
var voiceOptions = map[string][]VoiceOption{
	ProviderEdge:      edgeVoices,
	ProviderMicrosoft: edgeVoices,

	// HTTP API voices
	ProviderDoubao: {
		{Value: "BV700_V2_streaming", Label: "灿灿 2.0"},
		{Value: "BV705_streaming", Label: "炀炀"},
		{Value: "BV701_V2_streaming", Label: "擎苍 2.0"},
		{Value: "BV001_V2_streaming", Label: "通用女声 2.0"},
		{Value: "BV406_V2_streaming", Label: "超自然音色-梓梓2.0"},
		{Value: "BV407_V2_streaming", Label: "超自然音色-燃燃2.0"},
		{Value: "BV001_streaming", Label: "通用女声"},
		{Value: "BV002_streaming", Label: "通用男声"},
		{Value: "BV102_streaming", Label: "儒雅青年"},
		{Value: "BV113_streaming", Label: "甜宠少御"},
		{Value: "BV034_streaming", Label: "知性姐姐-双语"},
		{Value: "BV021_streaming", Label: "东北老铁"},
	},

	// Voice names follow zh_{gender}_{name}_bigtts; users may also type values not listed here.
	ProviderDoubaoWS: {
		{Value: "zh_female_wanwanxiaohe_moon_bigtts", Label: "湾湾小何（女声）"},
		{Value: "zh_female_qinqienvsheng_moon_bigtts", Label: "亲切女声（女声）"},
		{Value: "zh_female_vv_mars_bigtts", Label: "Vivi（女声）"},
		{Value: "zh_female_tianmeixiaoyuan_moon_bigtts", Label: "甜美小源（女声）"},
		{Value: "zh_female_shuangkuaisisi_moon_bigtts", Label: "爽快思思/Skye（女声）"},
		{Value: "zh_female_gaolengyujie_moon_bigtts", Label: "高冷御姐（女声）"},
		{Value: "zh_male_yangguangqingnian_moon_bigtts", Label: "阳光青年（男声）"},
		{Value: "zh_male_qingshuangnanda_mars_bigtts", Label: "清爽男大（男声）"},
		{Value: "zh_male_jieshuoxiaoming_moon_bigtts", Label: "解说小明（男声）"},
		{Value: "zh_male_wennuanahu_moon_bigtts", Label: "温暖阿虎/Alvin（男声）"},
		{Value: "zh_male_beijingxiaoye_moon_bigtts", Label: "北京小爷（男声）"},
		{Value: "zh_male_shenyeboke_moon_bigtts", Label: "深夜播客（男声）"},
	},

	ProviderMinimax: {
		{Value: "male-qn-qingse", Label: "青涩青年音色"},
		{Value: "male-qn-jingying", Label: "精英青年音色"},
		{Value: "male-qn-badao", Label: "霸道青年音色"},
		{Value: "male-qn-daxuesheng", Label: "青年大学生音色"},
		{Value: "female-shaonv", Label: "少女音色"},
		{Value: "female-yujie", Label: "御姐音色"},
		{Value: "female-chengshu", Label: "成熟女性音色"},
		{Value: "female-tianmei", Label: "甜美女性音色"},
		{Value: "clever_boy", Label: "聪明男童"},
		{Value: "cute_boy", Label: "可爱男童"},
		{Value: "lovely_girl", Label: "萌萌女童"},
		{Value: "Chinese (Mandarin)_News_Anchor", Label: "新闻女声"},
		{Value: "Chinese (Mandarin)_Radio_Host", Label: "电台男主播"},
		{Value: "Cantonese_GentleLady", Label: "温柔女声"},
		{Value: "English_Trustworthy_Man", Label: "Trustworthy Man"},
		{Value: "English_Graceful_Lady", Label: "Graceful Lady"},
	},

	ProviderAliyunQwen: {
		{Value: "Cherry", Label: "芊悦"},
		{Value: "Serena", Label: "苏瑶"},
		{Value: "Ethan", Label: "晨煦"},
		{Value: "Chelsie", Label: "千雪"},
		{Value: "Momo", Label: "茉兔"},
		{Value: "Vivian", Label: "十三"},
		{Value: "Moon", Label: "月白"},
		{Value: "Maia", Label: "四月"},
		{Value: "Kai", Label: "凯"},
		{Value: "Nofish", Label: "不吃鱼"},
		{Value: "Bella", Label: "萌宝"},
		{Value: "Jennifer", Label: "詹妮弗"},
		{Value: "Ryan", Label: "甜茶"},
	},

	ProviderZhipu: {
		{Value: "tongtong", Label: "彤彤（默认音色）"},
		{Value: "chuichui", Label: "锤锤"},
		{Value: "xiaochen", Label: "小陈"},
		{Value: "jam", Label: "动动动物圈jam音色"},
		{Value: "kazi", Label: "动动动物圈kazi音色"},
		{Value: "douji", Label: "动动动物圈douji音色"},
		{Value: "luodo", Label: "动动动物圈luodo音色"},
	},
}

// VoiceOptions returns the voices of provider, or an empty slice when it has none.
func VoiceOptions(provider string) []VoiceOption {
	voices, ok := voiceOptions[provider]
	if !ok {
		return []VoiceOption{}
	}
	return append([]VoiceOption(nil), voices...)
}

// KnownProvider reports whether provider appears in the options list or has voices.
func KnownProvider(provider string) bool {
	if _, ok := providerIndex[provider]; ok {
		return true
	}
	_, ok := voiceOptions[provider]
	return ok
}
