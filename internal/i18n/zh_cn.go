package i18n

// ZhCNMessages 简体中文消息目录
// ZhCNMessages Simplified Chinese message catalog
var ZhCNMessages = map[string]string{
	// 登录界面
	"login.title":       "登录",
	"login.placeholder": "you@example.com",
	"login.hint":        "输入邮箱以继续",
	"login.submit":      "回车登录",
	"login.empty":       "请输入邮箱",
	"login.invalid":     "邮箱格式不正确",

	// 任务列表
	"list.title":          "任务",
	"list.search":         "搜索",
	"list.section.today":  "今天",
	"list.section.soon":   "即将到期",
	"list.section.late":   "已逾期",
	"list.section.all":    "任务",
	"list.empty":          "还没有任务，按 n 新建一个。",
	"list.empty_filtered": "没有符合筛选条件的任务。",
	"list.confirm_delete": "删除 %q？再按一次 d 确认。",
	"list.count":          "共 %d 个任务",

	// 筛选
	"filter.all":      "全部",
	"filter.priority": "优先级：%s",
	"filter.status":   "状态：%s",

	// 优先级 / 状态标签
	"priority.Low":    "低",
	"priority.Medium": "中",
	"priority.High":   "高",
	"status.Todo":     "待办",
	"status.Done":     "已完成",

	// 任务编辑
	"editor.title.new":         "新建任务",
	"editor.title.edit":        "编辑任务",
	"editor.field.title":       "标题",
	"editor.field.description": "描述",
	"editor.field.priority":    "优先级",
	"editor.field.due":         "截止日期",
	"editor.field.tags":        "标签（逗号分隔）",
	"editor.save":              "保存",
	"editor.cancel":            "取消",
	"editor.title_required":    "标题不能为空",
	"editor.bad_date":          "截止日期请使用 YYYY-MM-DD 格式",

	// 活动日志
	"activity.title":    "活动",
	"activity.empty":    "暂无活动记录",
	"activity.create":   "于 %[2]s 创建了 %[1]q",
	"activity.update":   "于 %[2]s 更新了 %[1]q",
	"activity.complete": "于 %[2]s 完成了 %[1]q",
	"activity.reopen":   "于 %[2]s 重新打开了 %[1]q",
	"activity.delete":   "于 %[2]s 删除了 %[1]q",

	// 设置界面
	"settings.title":    "设置",
	"settings.account":  "当前账号：%s",
	"settings.theme":    "主题：%s",
	"settings.signout":  "退出登录",
	"settings.language": "语言：%s",
	"theme.dark":        "深色",
	"theme.light":       "浅色",

	// 快捷键
	"keys.nav":    "↑/↓ 移动",
	"keys.toggle": "空格 切换完成",
	"keys.new":    "n 新建",
	"keys.edit":   "e 编辑",
	"keys.delete": "d 删除",
	"keys.search": "/ 搜索",
	"keys.quit":   "q 退出",

	// REPL 命令
	"cmd.add":     "新建任务：add <标题>",
	"cmd.list":    "按截止日期分组列出任务",
	"cmd.done":    "切换任务完成状态：done <id>",
	"cmd.rm":      "删除任务：rm <id>",
	"cmd.show":    "查看任务详情：show <id>",
	"cmd.history": "查看活动日志",
	"cmd.search":  "筛选任务：search <文本>",
	"cmd.login":   "登录：login <邮箱>",
	"cmd.logout":  "退出登录",
	"cmd.theme":   "切换主题：theme dark|light",
	"cmd.help":    "显示可用命令",
	"cmd.quit":    "退出",

	// 错误与提示
	"error.storage":   "存储错误：%s",
	"error.not_found": "找不到 id 为 %s 的任务",
	"notice.added":    "已添加 %q",
	"notice.updated":  "已更新 %q",
	"notice.deleted":  "已删除 %q",
	"notice.reloaded": "已从磁盘重新加载任务",

	// 启动
	"startup.welcome":   "Taskpad — 数据目录：%s",
	"startup.migrated":  "已从 JSON 存储迁移 %d 条记录",
	"startup.repl_mode": "以 REPL 模式运行",
}
