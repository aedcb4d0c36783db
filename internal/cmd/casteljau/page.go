package main

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>De Casteljau</title>
<style>
body { font-family: sans-serif; margin: 1em; }
#controls { display: flex; gap: 2em; align-items: center; margin-bottom: 1em; }
#frame { width: 100%; height: 70vh; object-fit: contain; touch-action: none; user-select: none; }
</style>
</head>
<body>
<div id="controls">
  <label>t <input id="t" type="range" min="0" max="1" step="0.01"> <output id="tv"></output></label>
  <label>order <input id="order" type="number" min="1" max="100" step="1"></label>
</div>
<img id="frame" alt="curve" draggable="false">
<script>
const img = document.getElementById("frame");
const t = document.getElementById("t");
const tv = document.getElementById("tv");
const order = document.getElementById("order");
let dragging = false;
let busy = false;
// Requests are sent one at a time, in order. Only consecutive updates of
// the same kind (moves, t, order) replace each other while waiting; down,
// up and leave are never dropped.
const queue = [];

function show(state) {
  t.value = state.t;
  tv.textContent = Number(state.t).toFixed(2);
  if (document.activeElement !== order) order.value = state.order;
  if (queue.length === 0) dragging = state.dragging >= 0;
  img.src = "/frame.png?" + Date.now();
}

function coalesces(a, b) {
  if (a.path !== b.path) return false;
  if (a.path !== "/api/pointer") return true;
  return a.body.type === "move" && b.body.type === "move";
}

function post(path, body) {
  const req = {path: path, body: body};
  const last = queue[queue.length - 1];
  if (last && coalesces(last, req)) {
    queue[queue.length - 1] = req;
  } else {
    queue.push(req);
  }
  drain();
}

async function drain() {
  if (busy) return;
  busy = true;
  try {
    while (queue.length > 0) {
      const req = queue.shift();
      const r = await fetch(req.path, {method: "POST", headers: {"Content-Type": "application/json"}, body: JSON.stringify(req.body)});
      if (r.ok) show(await r.json());
    }
  } finally {
    busy = false;
  }
}

function pointer(type, e) {
  const b = img.getBoundingClientRect();
  post("/api/pointer", {type: type, x: e.clientX - b.left, y: e.clientY - b.top, width: b.width, height: b.height});
}

img.addEventListener("pointerdown", e => { e.preventDefault(); img.setPointerCapture(e.pointerId); dragging = true; pointer("down", e); });
img.addEventListener("pointermove", e => { if (dragging) pointer("move", e); });
img.addEventListener("pointerup", e => { dragging = false; pointer("up", e); });
img.addEventListener("pointerleave", e => { dragging = false; pointer("leave", e); });
t.addEventListener("input", () => post("/api/t", {t: Number(t.value)}));
order.addEventListener("change", () => post("/api/order", {order: order.value}));

fetch("/api/state").then(r => r.json()).then(show);
</script>
</body>
</html>
`
